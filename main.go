package main

//go:generate swag init

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/satheeshds/billing/auth"
	"github.com/satheeshds/billing/bill"
	"github.com/satheeshds/billing/catalog"
	"github.com/satheeshds/billing/config"
	"github.com/satheeshds/billing/db"
	_ "github.com/satheeshds/billing/docs"
	"github.com/satheeshds/billing/gst"
	"github.com/satheeshds/billing/handlers"
	"github.com/satheeshds/billing/render"
	"github.com/satheeshds/billing/store"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/urfave/cli/v2"
)

//go:embed static/*
var staticFiles embed.FS

// @title           GST Billing API
// @version         1.0.0
// @description     Build GST bills, print tax invoices and thermal receipts, and keep a register of saved invoices.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	app := &cli.App{
		Name:  "billing",
		Usage: "GST billing server and tools",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file (default ./config.yaml if present)",
				EnvVars: []string{"BILLING_CONFIG"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{Name: "serve", Usage: "run the HTTP API", Action: serve},
			{Name: "migrate", Usage: "apply database migrations and exit", Action: migrate},
			{Name: "catalog", Usage: "print the product catalog", Action: printCatalog},
			{
				Name:  "quote",
				Usage: "price a single item and print the GST breakdown",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "qty", Value: "1", Usage: "quantity"},
					&cli.StringFlag{Name: "price", Required: true, Usage: "unit price as entered"},
					&cli.IntFlag{Name: "rate", Value: 18, Usage: "GST rate (0, 5, 12, 18 or 28)"},
					&cli.BoolFlag{Name: "inclusive", Usage: "price already includes GST"},
				},
				Action: quote,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and configures structured logging.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	level := slog.LevelInfo
	if strings.EqualFold(cfg.Log.Level, "debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	return cfg, nil
}

func openDatabase(ctx context.Context, cfg *config.Config) (*db.Conn, error) {
	conn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	conn, err := openDatabase(c.Context, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Shared collaborators for handlers
	handlers.Store = store.New(conn)
	handlers.Auth = auth.NewService(handlers.Store, cfg.Auth)
	// A bill outlives its token by at most one idle period
	handlers.Sessions = bill.NewSessions(nil, handlers.Auth.TokenTTL())
	handlers.Render = render.Options{Watermark: cfg.Render.Watermark}

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", handlers.Routes)

	// Serve static files (UI)
	staticFS, _ := fs.Sub(staticFiles, "static")
	r.Handle("/*", http.FileServer(http.FS(staticFS)))

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("server starting", "address", addr, "driver", cfg.Database.Driver)
	return http.ListenAndServe(addr, r)
}

func migrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	conn, err := openDatabase(c.Context, cfg)
	if err != nil {
		return err
	}
	conn.Close()
	return nil
}

func printCatalog(c *cli.Context) error {
	out := c.App.Writer
	for _, cat := range catalog.Default() {
		fmt.Fprintln(out, cat.Name)
		if len(cat.Products) == 0 {
			fmt.Fprintln(out, "  (free-text product name)")
		}
		for _, p := range cat.Products {
			fmt.Fprintf(out, "  %-28s HSN %s\n", p.Name, p.HSNCode)
		}
	}
	return nil
}

func quote(c *cli.Context) error {
	return writeQuote(c.App.Writer, gst.ItemInput{
		Category:          gst.OthersCategory,
		CustomProductName: "quote",
		Quantity:          c.String("qty"),
		UnitPrice:         c.String("price"),
		Rate:              gst.Rate(c.Int("rate")),
		Inclusive:         c.Bool("inclusive"),
	})
}

// writeQuote prices a single item and prints its GST breakdown.
func writeQuote(out io.Writer, in gst.ItemInput) error {
	it, err := gst.PriceItem(in)
	if err != nil {
		return err
	}
	totals := gst.Aggregate([]gst.LineItem{it})

	fmt.Fprintf(out, "Unit price (excl. GST): %s\n", render.FormatINR(it.UnitPrice.Float()))
	fmt.Fprintf(out, "Taxable value:          %s\n", render.FormatINR(it.TaxableValue))
	fmt.Fprintf(out, "CGST (%.1f%%):           %s\n", float64(it.Rate)/2, render.FormatINR(totals.CGST()))
	fmt.Fprintf(out, "SGST (%.1f%%):           %s\n", float64(it.Rate)/2, render.FormatINR(totals.SGST()))
	fmt.Fprintf(out, "Total:                  %s\n", render.FormatINR(it.Total))
	return nil
}
