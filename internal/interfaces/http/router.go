package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProdutoUC    *usecase.ProdutoUseCase
	ComentarioUC *usecase.ComentarioUseCase
	AuthUC       *auth.AuthUseCase
	Sessao       *SessaoManager
}

// Router registra las rutas de la aplicación. Los paths conservan los nombres
// originales en portugués; todos son públicos (solo hay autenticación, no autorización).
func Router(app *fiber.App, deps RouterDeps) {
	homeHandler := NewHomeHandler(deps.Sessao)
	app.Get("/", homeHandler.Home)

	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	app.Post("/add_produto", produtoHandler.Create)
	app.Get("/get_produto/:id", produtoHandler.GetByID)
	app.Delete("/del_produto/:id", produtoHandler.Delete)
	app.Get("/produtos", produtoHandler.List)

	comentarioHandler := NewComentarioHandler(deps.ComentarioUC)
	app.Post("/add_comentario/:id", comentarioHandler.Add)

	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessao)
	app.Get("/cadastro", authHandler.CadastroForm)
	app.Post("/cadastro", authHandler.Cadastro)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
}
