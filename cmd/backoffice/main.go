package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go-backoffice-client/internal/config"
	"go-backoffice-client/internal/controller"
	"go-backoffice-client/internal/fallback"
	"go-backoffice-client/internal/model"
	"go-backoffice-client/internal/navigation"
	"go-backoffice-client/internal/service"
	"go-backoffice-client/pkg/credstore"
	"go-backoffice-client/pkg/httpclient"
	"go-backoffice-client/pkg/logger"

	"go.uber.org/zap"
)

// services bundles every entity service behind one wiring point so the rest
// of main never cares whether the remote API or the local store serves them.
type services struct {
	auth       service.AuthService
	products   service.ProductService
	categories service.CategoryService
	customers  service.CustomerService
	orders     service.OrderService
	users      service.UserService
	dashboard  service.DashboardService
}

func main() {
	// 1. Load Env
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// 2. Setup Logging
	log := logger.Init(cfg.LogMode, cfg.LogFile)
	defer log.Sync()

	// 3. Setup Credential Store
	creds, err := credstore.OpenBolt(cfg.CredentialPath)
	if err != nil {
		log.Fatal("open credential store", zap.Error(err))
	}
	defer creds.Close()

	// 4. Dependency Injection (Wiring Layers)
	svcs, cleanup, err := wireServices(cfg, creds, log)
	if err != nil {
		log.Fatal("wire services", zap.Error(err))
	}
	defer cleanup()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, os.Args[1], os.Args[2:], svcs, log); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// wireServices picks the remote layer when the API is enabled and the local
// fallback store otherwise.
func wireServices(cfg *config.Config, creds credstore.Store, log *zap.Logger) (*services, func(), error) {
	if cfg.EnableAPI {
		client := httpclient.New(cfg.BaseURL, cfg.Timeout(), creds,
			httpclient.WithLogger(log),
			httpclient.WithUnauthorizedHook(func() {
				log.Warn("session expired, credentials cleared")
			}),
		)
		return &services{
			auth:       service.NewAuthService(client, creds),
			products:   service.NewProductService(client),
			categories: service.NewCategoryService(client),
			customers:  service.NewCustomerService(client),
			orders:     service.NewOrderService(client),
			users:      service.NewUserService(client),
			dashboard:  service.NewDashboardService(client),
		}, func() {}, nil
	}

	log.Info("remote API disabled, using local store", zap.String("path", cfg.LocalStorePath))
	store, err := fallback.Open(cfg.LocalStorePath)
	if err != nil {
		return nil, nil, err
	}
	return &services{
		auth:       fallback.NewAuthService(store, creds),
		products:   fallback.NewProductService(store),
		categories: fallback.NewCategoryService(store),
		customers:  fallback.NewCustomerService(store),
		orders:     fallback.NewOrderService(store),
		users:      fallback.NewUserService(store),
		dashboard:  fallback.NewDashboardService(store),
	}, func() { store.Close() }, nil
}

func run(ctx context.Context, command string, args []string, svcs *services, log *zap.Logger) error {
	switch command {
	case "login":
		return runLogin(ctx, args, svcs)
	case "logout":
		return svcs.auth.Logout(ctx)
	case "whoami":
		return runWhoami(svcs)
	case "menu":
		return runMenu(svcs)
	case "dashboard":
		return runDashboard(ctx, svcs)
	case "products":
		return runProducts(ctx, args, svcs, log)
	case "categories":
		return runCategories(ctx, svcs, log)
	case "customers":
		return runCustomers(ctx, args, svcs, log)
	case "orders":
		return runOrders(ctx, args, svcs, log)
	case "users":
		return runUsers(ctx, args, svcs, log)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: backoffice <command> [flags]

Commands:
  login       -email -password     Sign in and store the session
  logout                           Sign out and clear the session
  whoami                           Show the stored user
  menu                             Show the navigation items visible to the stored user
  dashboard                        Show headline stats and recent orders
  products    [-search -category -status -page -limit]
  categories
  customers   [-search -status -page -limit]
  orders      [-search -status -page -limit]
  users       [-search -status -page -limit]`)
}

func runLogin(ctx context.Context, args []string, svcs *services) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	user, err := svcs.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runWhoami(svcs *services) error {
	user, err := svcs.auth.CurrentUser()
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\nRole: %s\nPermissions: %v\n", user.Name, user.Email, user.Role, user.Permissions)
	return nil
}

func runMenu(svcs *services) error {
	user, err := svcs.auth.CurrentUser()
	if err != nil {
		return err
	}
	for _, item := range navigation.Visible(user.Role, user.Permissions) {
		fmt.Println(item.Label)
	}
	return nil
}

func runDashboard(ctx context.Context, svcs *services) error {
	stats, err := svcs.dashboard.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Revenue: %.2f  Orders: %d  Customers: %d  Products: %d\n",
		stats.TotalRevenue, stats.TotalOrders, stats.TotalCustomers, stats.TotalProducts)

	recent, err := svcs.dashboard.RecentOrders(ctx)
	if err != nil {
		return err
	}
	for _, order := range recent {
		fmt.Printf("  #%s  %-12s %8.2f  %s\n", order.ID, order.Status, order.Total, order.CreatedAt)
	}
	return nil
}

func listFlags(name string, args []string) model.ListFilter {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	search := fs.String("search", "", "text filter")
	category := fs.String("category", "", "category filter")
	status := fs.String("status", "", "status filter")
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "page size")
	fs.Parse(args)
	return model.ListFilter{
		Search:   *search,
		Category: *category,
		Status:   *status,
		Page:     *page,
		Limit:    *limit,
	}
}

func runProducts(ctx context.Context, args []string, svcs *services, log *zap.Logger) error {
	ctrl := controller.NewProductController(svcs.products, log)
	if err := ctrl.SetFilter(ctx, listFlags("products", args)); err != nil {
		return err
	}
	snap := ctrl.Snapshot()
	for _, p := range snap.Products {
		fmt.Printf("%-14s %-24s %-12s %8.2f  stock=%d\n", p.ID, p.Name, p.Category, p.Price, p.Stock)
	}
	fmt.Printf("%d of %d products\n", len(snap.Products), snap.Total)
	return nil
}

func runCategories(ctx context.Context, svcs *services, log *zap.Logger) error {
	ctrl := controller.NewCategoryController(svcs.categories, log)
	if err := ctrl.Refetch(ctx); err != nil {
		return err
	}
	snap := ctrl.Snapshot()
	for _, c := range snap.Categories {
		fmt.Printf("%-14s %-20s active=%t\n", c.ID, c.DisplayName, c.IsActive)
	}
	return nil
}

func runCustomers(ctx context.Context, args []string, svcs *services, log *zap.Logger) error {
	ctrl := controller.NewCustomerController(svcs.customers, log)
	if err := ctrl.SetFilter(ctx, listFlags("customers", args)); err != nil {
		return err
	}
	snap := ctrl.Snapshot()
	for _, c := range snap.Customers {
		fmt.Printf("%-14s %-24s %-28s %-8s %s\n", c.ID, c.Name, c.Email, c.Status, c.Membership)
	}
	fmt.Printf("%d of %d customers\n", len(snap.Customers), snap.Total)
	return nil
}

func runOrders(ctx context.Context, args []string, svcs *services, log *zap.Logger) error {
	ctrl := controller.NewOrderController(svcs.orders, log)
	if err := ctrl.SetFilter(ctx, listFlags("orders", args)); err != nil {
		return err
	}
	snap := ctrl.Snapshot()
	for _, o := range snap.Orders {
		fmt.Printf("#%-13s %-24s %-12s %8.2f\n", o.ID, o.CustomerName, o.Status, o.Total)
	}
	fmt.Printf("%d of %d orders\n", len(snap.Orders), snap.Total)
	return nil
}

func runUsers(ctx context.Context, args []string, svcs *services, log *zap.Logger) error {
	ctrl := controller.NewUserController(svcs.users, log)
	if err := ctrl.SetFilter(ctx, listFlags("users", args)); err != nil {
		return err
	}
	snap := ctrl.Snapshot()
	for _, u := range snap.Users {
		fmt.Printf("%-14s %-24s %-28s %-12s %s\n", u.ID, u.Name, u.Email, u.Role, u.Status)
	}
	fmt.Printf("%d of %d users\n", len(snap.Users), snap.Total)
	return nil
}
