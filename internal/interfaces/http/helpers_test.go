package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

var testSessaoCfg = config.SessaoConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	CookieName: "sessao",
}

type fakeProdutoRepo struct {
	seq      int64
	produtos map[int64]*entity.Produto
	porNome  map[string]int64
	ordem    []int64
	// falhaCreate simula una falla de persistencia distinta al nome duplicado.
	falhaCreate error
}

var _ repository.ProdutoRepository = (*fakeProdutoRepo)(nil)

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{
		produtos: make(map[int64]*entity.Produto),
		porNome:  make(map[string]int64),
	}
}

func (f *fakeProdutoRepo) Create(p *entity.Produto) error {
	if f.falhaCreate != nil {
		return f.falhaCreate
	}
	if _, ok := f.porNome[p.Nome]; ok {
		return domain.ErrDuplicate
	}
	f.seq++
	p.ID = f.seq
	p.CriadoEm = time.Now()
	cp := *p
	f.produtos[p.ID] = &cp
	f.porNome[p.Nome] = p.ID
	f.ordem = append(f.ordem, p.ID)
	return nil
}

func (f *fakeProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	p, ok := f.produtos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Comentarios = append([]entity.Comentario(nil), p.Comentarios...)
	return &cp, nil
}

func (f *fakeProdutoRepo) DeleteByID(id int64) (int64, error) {
	p, ok := f.produtos[id]
	if !ok {
		return 0, nil
	}
	delete(f.produtos, id)
	delete(f.porNome, p.Nome)
	for i, pid := range f.ordem {
		if pid == id {
			f.ordem = append(f.ordem[:i], f.ordem[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (f *fakeProdutoRepo) List() ([]*entity.Produto, error) {
	var list []*entity.Produto
	for _, id := range f.ordem {
		cp := *f.produtos[id]
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeProdutoRepo) AddComentario(c *entity.Comentario) error {
	p, ok := f.produtos[c.ProdutoID]
	if !ok {
		return domain.ErrNotFound
	}
	f.seq++
	c.ID = f.seq
	c.CriadoEm = time.Now()
	p.Comentarios = append(p.Comentarios, *c)
	return nil
}

// produtoTxRunner ejecuta el callback directamente contra el fake (sin transacción real).
type produtoTxRunner struct {
	repo *fakeProdutoRepo
}

var _ usecase.TxRunner = (*produtoTxRunner)(nil)

func (f *produtoTxRunner) Run(ctx context.Context, fn func(repository.ProdutoRepository) error) error {
	return fn(f.repo)
}

type fakeUsuarioRepo struct {
	seq      int64
	porEmail map[string]*entity.Usuario
	// falhaCreate simula una falla de persistencia distinta al email duplicado.
	falhaCreate error
}

var _ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porEmail: make(map[string]*entity.Usuario)}
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if f.falhaCreate != nil {
		return f.falhaCreate
	}
	if _, ok := f.porEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.seq++
	u.ID = f.seq
	u.CriadoEm = time.Now()
	cp := *u
	f.porEmail[u.Email] = &cp
	return nil
}

func (f *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	u, ok := f.porEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de la app de test y helpers HTTP
// ──────────────────────────────────────────────────────────────────────────────

type testDeps struct {
	app      *fiber.App
	produtos *fakeProdutoRepo
	usuarios *fakeUsuarioRepo
	sessao   *apphttp.SessaoManager
}

// buildTestApp construye la aplicación Fiber completa (router + templates reales)
// sobre repositorios fake en memoria.
func buildTestApp(t *testing.T) *testDeps {
	t.Helper()
	engine := html.New("../../../web/templates", ".html")
	// Immutable: los fakes en memoria retienen strings del formulario más allá
	// del handler; sin copia, fiber reutiliza el buffer de la request.
	app := fiber.New(fiber.Config{Views: engine, Immutable: true})

	produtos := newFakeProdutoRepo()
	usuarios := newFakeUsuarioRepo()
	sessaoManager := apphttp.NewSessaoManager(testSessaoCfg)

	apphttp.Router(app, apphttp.RouterDeps{
		ProdutoUC:    usecase.NewProdutoUseCase(produtos),
		ComentarioUC: usecase.NewComentarioUseCase(&produtoTxRunner{repo: produtos}),
		AuthUC:       auth.NewAuthUseCase(usuarios),
		Sessao:       sessaoManager,
	})
	return &testDeps{app: app, produtos: produtos, usuarios: usuarios, sessao: sessaoManager}
}

// postForm lanza un POST form-encoded y devuelve la respuesta.
func postForm(t *testing.T, app *fiber.App, path string, values url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doRequest(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func newRequestWithCookie(t *testing.T, method, path string, cookie *http.Cookie) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(cookie)
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
