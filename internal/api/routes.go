package api

import "github.com/gofiber/fiber/v2"

// ServerInterface lists the handlers the delivery layer must provide.
type ServerInterface interface {
	ListEmployees(c *fiber.Ctx) error
	GetEmployee(c *fiber.Ctx) error
	CreateEmployee(c *fiber.Ctx) error
	UpdateEmployee(c *fiber.Ctx) error
	DeleteEmployee(c *fiber.Ctx) error

	FindUser(c *fiber.Ctx) error
	GetUser(c *fiber.Ctx) error
	CreateUser(c *fiber.Ctx) error
	UpdateUser(c *fiber.Ctx) error
	DeleteUser(c *fiber.Ctx) error
}

// RegisterHandlers binds the REST surface onto the fiber app.
func RegisterHandlers(app *fiber.App, h ServerInterface) {
	g := app.Group("/api")

	g.Get("/employees", h.ListEmployees)
	g.Post("/employees", h.CreateEmployee)
	g.Get("/employees/:id", h.GetEmployee)
	g.Patch("/employees/:id", h.UpdateEmployee)
	g.Delete("/employees/:id", h.DeleteEmployee)

	g.Get("/users", h.FindUser)
	g.Post("/users", h.CreateUser)
	g.Get("/users/:id", h.GetUser)
	g.Patch("/users/:id", h.UpdateUser)
	g.Delete("/users/:id", h.DeleteUser)
}
