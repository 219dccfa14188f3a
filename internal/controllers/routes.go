package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the pizzaria API on router
func RegisterRoutes(router gin.IRouter, pizzas PizzaController, customers CustomerController, orders OrderController) {
	pizzaRoutes := router.Group("/pizzas")
	{
		pizzaRoutes.POST("", pizzas.CreatePizza)
		pizzaRoutes.GET("", pizzas.GetAllPizzas)
		pizzaRoutes.GET("/:id", pizzas.GetPizzaByID)
		pizzaRoutes.DELETE("/:id", pizzas.DeletePizza)
	}

	customerRoutes := router.Group("/usuarios")
	{
		customerRoutes.POST("", customers.CreateCustomer)
		customerRoutes.GET("", customers.ListCustomers)
		customerRoutes.GET("/email/:email", customers.GetCustomerByEmail)
		customerRoutes.GET("/:id/pedidos", customers.ListCustomerOrders)
	}

	orderRoutes := router.Group("/pedidos")
	{
		orderRoutes.POST("", orders.CreateOrder)
		orderRoutes.GET("", orders.ListOrders)
		orderRoutes.GET("/:id", orders.GetOrder)
		orderRoutes.PUT("/:id/status", orders.UpdateOrderStatus)
	}
}
