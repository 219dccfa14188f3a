package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/franciscosanchezn/pizzaria-api/internal/config"
	"github.com/franciscosanchezn/pizzaria-api/internal/database"
	"github.com/franciscosanchezn/pizzaria-api/internal/services"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

func main() {
	// Parse command line flags
	limit := flag.Int("orders", 10, "Number of recent orders to print (0 skips orders)")
	flag.Parse()

	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	// One attempt is enough for a report
	conf.Database.MaxRetries = 1

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.InitDatabase(ctx, conf.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	pizzas, err := services.NewPizzaService(db).ListPizzas(ctx)
	if err != nil {
		log.Fatal("Failed to list pizzas:", err)
	}

	fmt.Println("Cardápio")
	menu := tablewriter.NewWriter(os.Stdout)
	menu.Header("ID", "Nome", "Tamanho", "Preço")
	for _, pizza := range pizzas {
		if err := menu.Append([]string{
			fmt.Sprint(pizza.ID), pizza.Name, pizza.Size, pizza.Price.StringFixed(2),
		}); err != nil {
			log.Fatal("Failed to render menu:", err)
		}
	}
	if err := menu.Render(); err != nil {
		log.Fatal("Failed to render menu:", err)
	}

	if *limit <= 0 {
		return
	}

	orders, err := services.NewOrderService(db).ListOrders(ctx)
	if err != nil {
		log.Fatal("Failed to list orders:", err)
	}
	if len(orders) > *limit {
		orders = orders[:*limit]
	}

	fmt.Println("\nÚltimos pedidos")
	recent := tablewriter.NewWriter(os.Stdout)
	recent.Header("Pedido", "Cliente", "Email", "Total", "Status", "Criado em")
	for _, order := range orders {
		if err := recent.Append([]string{
			fmt.Sprint(order.ID),
			order.CustomerName,
			order.CustomerEmail,
			order.Total.StringFixed(2),
			order.Status,
			order.CreatedAt.Local().Format("2006-01-02 15:04"),
		}); err != nil {
			log.Fatal("Failed to render orders:", err)
		}
	}
	if err := recent.Render(); err != nil {
		log.Fatal("Failed to render orders:", err)
	}
}
