package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// parseBody: modo estricto y acumulación de violaciones
// ──────────────────────────────────────────────────────────────────────────────

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyParserApp() *fiber.App {
	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		var in dto.LoginRequest
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestParseBody_CuerpoValido(t *testing.T) {
	app := bodyParserApp()
	resp := postJSON(t, app, "/login", `{"email":"ana@acme.co","password":"secreta123"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Todas las violaciones se reportan en una sola respuesta, no solo la primera.
func TestParseBody_ReportaTodasLasViolaciones(t *testing.T) {
	app := bodyParserApp()
	resp := postJSON(t, app, "/login", `{"email":"no-es-email","password":"corta"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	body := string(raw)
	assert.Contains(t, body, CodeValidationFailed)
	assert.Contains(t, body, `"email"`)
	assert.Contains(t, body, `"password"`)
}

func TestParseBody_CampoDesconocidoSeRechaza(t *testing.T) {
	app := bodyParserApp()
	resp := postJSON(t, app, "/login", `{"email":"ana@acme.co","password":"secreta123","extra":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseBody_JSONMalformado(t *testing.T) {
	app := bodyParserApp()
	resp := postJSON(t, app, "/login", `{"email":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// parsePage: un page explícito inválido se rechaza, el limit se recorta
// ──────────────────────────────────────────────────────────────────────────────

func pageApp() *fiber.App {
	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		p, err := parsePage(c)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"page": p.Page, "limit": p.Limit})
	})
	return app
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestParsePage_Defaults(t *testing.T) {
	app := pageApp()
	resp := getPath(t, app, "/list")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"page":1,"limit":20}`, string(raw))
}

func TestParsePage_PageInvalido_Retorna400(t *testing.T) {
	app := pageApp()
	for _, path := range []string{"/list?page=0", "/list?page=-2", "/list?page=abc"} {
		resp := getPath(t, app, path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
			"%s: page fuera de rango se rechaza, no se corrige", path)
		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `"page"`)
		resp.Body.Close()
	}
}

func TestParsePage_LimitFueraDeRango_SeRecorta(t *testing.T) {
	app := pageApp()
	resp := getPath(t, app, "/list?page=2&limit=9999")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"page":2,"limit":100}`, string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// pathID: el formato se valida antes de tocar el storage
// ──────────────────────────────────────────────────────────────────────────────

func TestPathID_UUIDInvalido(t *testing.T) {
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		if _, err := pathID(c); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp := getPath(t, app, "/things/no-es-uuid")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getPath(t, app, "/things/7a5ef0a4-3b83-4f2e-9a33-9f17f4f0e001")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// queryUUID / queryDate: los filtros de listado se validan antes del storage
// ──────────────────────────────────────────────────────────────────────────────

func queryFilterApp() *fiber.App {
	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		clientID, err := queryUUID(c, "clientId")
		if err != nil {
			return respondError(c, err)
		}
		from, err := queryDate(c, "dueFrom")
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"clientId": clientID, "dueFrom": from})
	})
	return app
}

func TestQueryUUID_AusenteYValido(t *testing.T) {
	app := queryFilterApp()

	resp := getPath(t, app, "/list")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getPath(t, app, "/list?clientId=7a5ef0a4-3b83-4f2e-9a33-9f17f4f0e001")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "7a5ef0a4-3b83-4f2e-9a33-9f17f4f0e001")
}

// Un clientId malformado responde 400 nombrando el parámetro, nunca llega al
// driver ni degrada en listado vacío.
func TestQueryUUID_Malformado_Retorna400(t *testing.T) {
	app := queryFilterApp()
	resp := getPath(t, app, "/list?clientId=no-es-uuid")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	body := string(raw)
	assert.Contains(t, body, CodeValidationFailed)
	assert.Contains(t, body, `"clientId"`)
}

func TestQueryDate_Malformada_Retorna400(t *testing.T) {
	app := queryFilterApp()
	for _, path := range []string{"/list?dueFrom=15-08-2026", "/list?dueFrom=ayer", "/list?dueFrom=2026-13-99"} {
		resp := getPath(t, app, path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), `"dueFrom"`)
		resp.Body.Close()
	}
}

func TestQueryDate_Valida(t *testing.T) {
	app := queryFilterApp()
	resp := getPath(t, app, "/list?dueFrom=2026-08-15")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// respondError: taxonomía de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestRespondError_Taxonomia(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no autenticado", domain.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthenticated},
		{"prohibido", domain.ErrForbidden, http.StatusForbidden, CodeForbidden},
		{"no encontrado", domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
		{"validación", domain.NewValidationError("name", "es requerido"), http.StatusBadRequest, CodeValidationFailed},
		{"conflicto", &domain.ConflictError{Field: "taxId"}, http.StatusConflict, CodeConflict},
		{"transición inválida", domain.ErrInvalidStatus, http.StatusConflict, CodeConflict},
		{"inesperado", io.ErrUnexpectedEOF, http.StatusInternalServerError, CodeUnexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})
			resp := getPath(t, app, "/boom")
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			raw, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(raw), tc.code)
		})
	}
}

// El conflicto nombra el campo en disputa.
func TestRespondError_ConflictoNombraElCampo(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, &domain.ConflictError{Field: "policyNumber"})
	})
	resp := getPath(t, app, "/boom")
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "policyNumber")
}
