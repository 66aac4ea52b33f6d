package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/correduria-api/internal/interfaces/http"
	"github.com/jhoicas/correduria-api/pkg/config"
	pkgjwt "github.com/jhoicas/correduria-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret   = "test-secret-key-for-unit-tests"
	testUserID      = "00000000-0000-0000-0000-000000000001"
	testAffiliateID = "00000000-0000-0000-0000-000000000002"
	testIssuer      = "correduria-api-test"
	testExpMin      = 60
)

// buildTestApp construye una app Fiber mínima con el middleware de auth y un
// handler que devuelve la identidad del contexto.
func buildTestApp(authCfg config.AuthConfig) *fiber.App {
	app := fiber.New()
	jwtCfg := config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer}
	app.Get("/me", apphttp.AuthMiddleware(jwtCfg, authCfg), func(c *fiber.Ctx) error {
		caller := apphttp.GetCaller(c)
		return c.JSON(fiber.Map{
			"user_id":      caller.UserID,
			"role":         string(caller.Role),
			"affiliate_id": caller.AffiliateID,
		})
	})
	return app
}

func tokenFor(t *testing.T, role, affiliateID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, affiliateID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValido_ExtraeIdentidad(t *testing.T) {
	app := buildTestApp(config.AuthConfig{})
	resp := doRequest(t, app, tokenFor(t, "afiliado", testAffiliateID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "afiliado", body["role"])
	assert.Equal(t, testAffiliateID, body["affiliate_id"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(config.AuthConfig{})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(config.AuthConfig{})

	for _, header := range []string{
		"token-sin-esquema",
		"Basic dXNlcjpwYXNz",
		"Bearer ",
	} {
		resp := doRequest(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_TokenBasura_Retorna401(t *testing.T) {
	app := buildTestApp(config.AuthConfig{})
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RolDesconocidoEnToken_Retorna401(t *testing.T) {
	app := buildTestApp(config.AuthConfig{})
	resp := doRequest(t, app, tokenFor(t, "superusuario", ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un rol fuera de la enumeración invalida el token")
}

// ──────────────────────────────────────────────────────────────────────────────
// Identidad de prueba (solo configurable fuera de production)
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_IdentidadDePrueba_SinToken(t *testing.T) {
	app := buildTestApp(config.AuthConfig{
		TestIdentityUserID: testUserID,
		TestIdentityRole:   "admin",
	})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "admin", body["role"])
}

// Con identidad de prueba configurada, un token explícito sigue teniendo prioridad.
func TestAuthMiddleware_IdentidadDePrueba_TokenExplicitoGana(t *testing.T) {
	app := buildTestApp(config.AuthConfig{
		TestIdentityUserID: "otro-usuario",
		TestIdentityRole:   "admin",
	})
	resp := doRequest(t, app, tokenFor(t, "gestor", ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "gestor", body["role"])
}

// config.Load limpia la identidad de prueba en production; ver pkg/config.
