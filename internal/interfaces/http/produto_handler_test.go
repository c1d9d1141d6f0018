package http_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

func formProduto(nome, quantidade, valor string) url.Values {
	return url.Values{
		"nome":       {nome},
		"quantidade": {quantidade},
		"valor":      {valor},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /add_produto
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduto_Exito(t *testing.T) {
	deps := buildTestApp(t)

	resp := postForm(t, deps.app, "/add_produto", formProduto("Caneta", "10", "2.5"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Caneta")
	assert.Contains(t, body, "10", "el template debe mostrar la cantidad")
}

func TestAddProduto_NomeDuplicado_Retorna409(t *testing.T) {
	deps := buildTestApp(t)

	resp := postForm(t, deps.app, "/add_produto", formProduto("Caneta", "10", "2.5"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = postForm(t, deps.app, "/add_produto", formProduto("Caneta", "3", "1"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Produto de mesmo nome já salvo na base :/")

	// El total de productos subió exactamente en uno.
	list, err := deps.produtos.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAddProduto_NomeFaltante_Retorna400(t *testing.T) {
	deps := buildTestApp(t)

	resp := postForm(t, deps.app, "/add_produto", formProduto("", "10", "2.5"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAddProduto_QuantidadeNoNumerica_Retorna400(t *testing.T) {
	deps := buildTestApp(t)

	resp := postForm(t, deps.app, "/add_produto", formProduto("Caneta", "muitas", "2.5"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAddProduto_FallaDePersistencia_Retorna400SinDetalleInterno(t *testing.T) {
	deps := buildTestApp(t)
	deps.produtos.falhaCreate = fmt.Errorf("insert produto: %w", errors.New("conexión rechazada por la base 10.0.0.7:5432"))

	resp := postForm(t, deps.app, "/add_produto", formProduto("Caneta", "10", "2.5"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "Não foi possível salvar novo item :/")
	// El detalle interno va solo al log, nunca al cuerpo de la respuesta.
	assert.NotContains(t, body, "conexión rechazada")
	assert.NotContains(t, body, "10.0.0.7")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /get_produto/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProduto_Inexistente_Retorna404(t *testing.T) {
	deps := buildTestApp(t)

	resp := doRequest(t, deps.app, http.MethodGet, "/get_produto/999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Produto não encontrado na base :/")
}

func TestGetProduto_IDNoNumerico_Retorna404(t *testing.T) {
	deps := buildTestApp(t)

	resp := doRequest(t, deps.app, http.MethodGet, "/get_produto/abc")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestGetProduto_Existente_Retorna200(t *testing.T) {
	deps := buildTestApp(t)
	postForm(t, deps.app, "/add_produto", formProduto("Caderno", "5", "12.9")).Body.Close()

	resp := doRequest(t, deps.app, http.MethodGet, "/get_produto/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Caderno")
}

// ──────────────────────────────────────────────────────────────────────────────
// DELETE /del_produto/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestDelProduto_UnaVezPorID(t *testing.T) {
	deps := buildTestApp(t)
	postForm(t, deps.app, "/add_produto", formProduto("Caneta", "10", "2.5")).Body.Close()

	// Primera vez: 200
	resp := doRequest(t, deps.app, http.MethodDelete, "/del_produto/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Segunda vez: 404 (cero filas afectadas)
	resp = doRequest(t, deps.app, http.MethodDelete, "/del_produto/1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /add_comentario/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestAddComentario_ProdutoInexistente_Retorna404(t *testing.T) {
	deps := buildTestApp(t)

	resp := postForm(t, deps.app, "/add_comentario/999", url.Values{
		"autor": {"Ana"}, "texto": {"ótimo"},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// No debe haber quedado ningún comentario colgando.
	for _, p := range deps.produtos.produtos {
		assert.Empty(t, p.Comentarios)
	}
}

func TestAddComentario_AgregaEnOrden(t *testing.T) {
	deps := buildTestApp(t)
	postForm(t, deps.app, "/add_produto", formProduto("Caneta", "10", "2.5")).Body.Close()

	resp := postForm(t, deps.app, "/add_comentario/1", url.Values{
		"autor": {"Ana"}, "texto": {"ótimo"}, "n_estrela": {"5"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Ana", "el producto renderizado incluye el comentario nuevo")
	assert.Contains(t, body, "5 estrelas")

	resp = postForm(t, deps.app, "/add_comentario/1", url.Values{
		"autor": {"Bia"}, "texto": {"regular"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	p, err := deps.produtos.GetByID(1)
	require.NoError(t, err)
	require.Len(t, p.Comentarios, 2)
	assert.Equal(t, "Ana", p.Comentarios[0].Autor, "orden de inserción")
	assert.Equal(t, "Bia", p.Comentarios[1].Autor)
	assert.Nil(t, p.Comentarios[1].NEstrelas)
}

func TestAddComentario_EstrelaNoNumerica_Retorna400(t *testing.T) {
	deps := buildTestApp(t)
	postForm(t, deps.app, "/add_produto", formProduto("Caneta", "10", "2.5")).Body.Close()

	resp := postForm(t, deps.app, "/add_comentario/1", url.Values{
		"autor": {"Ana"}, "n_estrela": {"cinco"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	p, err := deps.produtos.GetByID(1)
	require.NoError(t, err)
	assert.Empty(t, p.Comentarios, "una calificación inválida no crea comentario")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /produtos
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutos_ListadoJSON(t *testing.T) {
	deps := buildTestApp(t)
	postForm(t, deps.app, "/add_produto", formProduto("Caneta", "10", "2.5")).Body.Close()
	postForm(t, deps.app, "/add_produto", formProduto("Caderno", "5", "12.9")).Body.Close()
	doRequest(t, deps.app, http.MethodDelete, "/del_produto/1").Body.Close()

	resp := doRequest(t, deps.app, http.MethodGet, "/produtos")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProdutosResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()

	// Solo queda el producto no borrado, con sus campos intactos.
	require.Len(t, out.Produtos, 1)
	assert.Equal(t, "Caderno", out.Produtos[0].Nome)
	assert.Equal(t, 5, out.Produtos[0].Quantidade)
	assert.True(t, decimal.RequireFromString("12.9").Equal(out.Produtos[0].Valor))
}

func TestProdutos_ListadoVacio(t *testing.T) {
	deps := buildTestApp(t)

	resp := doRequest(t, deps.app, http.MethodGet, "/produtos")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	_, ok := out["produtos"]
	assert.True(t, ok, `la clave "produtos" está presente aunque no haya productos`)
}
