// cmd/console/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"flyadmin/internal/application/query"
	"flyadmin/internal/application/usecase"
	common "flyadmin/internal/domain/common"
	orderdom "flyadmin/internal/domain/order"
	"flyadmin/internal/infra/config"
	"flyadmin/internal/platform/di"
)

const snapshotTimeout = 15 * time.Second

func usage() {
	fmt.Fprintln(os.Stderr, `usage: console [-email <email>] <command> [args]

commands:
  products                      list products (rating desc)
  orders [status]               list orders, optionally filtered by status
  users                         list users (merged with the legacy admin node)
  revenue                       total revenue across non-cancelled orders
  order-status <id> <status>    set an order status
  user-role <uid> <role>        set a user role (admin|user)
  reset-password <email>        send a password reset mail and exit`)
	os.Exit(2)
}

func main() {
	emailFlag := flag.String("email", "", "sign-in email (defaults to the remembered one)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	if err := godotenv.Load(); err == nil {
		log.Printf("[console] loaded .env")
	}

	ctx := context.Background()
	cfg := config.Load()

	cont, cleanup, err := di.BuildConsole(ctx, cfg)
	if err != nil {
		log.Fatalf("[console] init failed: %v", err)
	}
	defer cleanup()

	in := bufio.NewReader(os.Stdin)

	// reset-password works without a session.
	if flag.Arg(0) == "reset-password" {
		if flag.NArg() != 2 {
			usage()
		}
		if err := cont.Identity.SendPasswordReset(ctx, flag.Arg(1)); err != nil {
			log.Fatalf("[console] password reset failed: %v", err)
		}
		fmt.Println("password reset mail sent")
		return
	}

	session, err := signIn(ctx, cont, in, *emailFlag)
	if err != nil {
		log.Fatalf("[console] sign-in failed: %v", err)
	}

	d := cont.Gate.Check(ctx, session.UID)
	if !d.Admitted {
		log.Fatalf("[console] access denied (%s): %s", d.Reason, d.Message)
	}
	ctx = usecase.WithIdentity(ctx, session.UID, session.Email)

	if err := run(ctx, cont, flag.Args()); err != nil {
		log.Fatalf("[console] %s failed: %v", flag.Arg(0), err)
	}
}

func signIn(ctx context.Context, cont *di.ConsoleContainer, in *bufio.Reader, email string) (signedIn, error) {
	remembered, _ := cont.Prefs.RememberMe()
	if email == "" && remembered {
		email, _ = cont.Prefs.LastEmail()
	}
	if email == "" {
		email = prompt(in, "email: ")
	} else {
		fmt.Printf("signing in as %s\n", email)
	}
	password := prompt(in, "password: ")

	session, err := cont.Identity.SignIn(ctx, email, password)
	if err != nil {
		return signedIn{}, err
	}

	if !remembered {
		if strings.EqualFold(prompt(in, "remember email? [y/N] "), "y") {
			_ = cont.Prefs.SetRememberMe(true)
		}
	}
	if on, _ := cont.Prefs.RememberMe(); on {
		_ = cont.Prefs.SetLastEmail(session.Email)
	}
	return signedIn{UID: session.UID, Email: session.Email}, nil
}

type signedIn struct {
	UID   string
	Email string
}

func run(ctx context.Context, cont *di.ConsoleContainer, args []string) error {
	switch args[0] {
	case "products":
		sub, err := cont.ProductUC.Watch(ctx)
		if err != nil {
			return err
		}
		products, err := firstSnapshot(ctx, sub)
		if err != nil {
			return err
		}
		for _, p := range query.Compose(products, query.ProductParams{Sort: query.SortRatingDesc}) {
			fmt.Printf("%-22s %-32s %8.2f  rating=%.1f stock=%d\n", p.ID, p.Title, p.Price, p.Rating, p.Stock)
		}
		return nil

	case "orders":
		var orders []orderdom.Order
		var err error
		if len(args) > 1 {
			orders, err = cont.OrderUC.ListByStatus(ctx, args[1])
		} else {
			orders, err = cont.OrderUC.List(ctx)
		}
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("%-22s %-28s %-11s %8.2f\n", o.ID, o.UserEmail, o.Status, o.Pricing.Total)
		}
		return nil

	case "users":
		feed := query.NewUsersFeed()
		defer feed.Close()

		currentSub, err := cont.UserUC.Watch(ctx)
		if err != nil {
			return err
		}
		current, err := firstSnapshot(ctx, currentSub)
		if err != nil {
			return err
		}
		feed.SetCurrent(current)

		legacySub, err := cont.UserUC.WatchLegacy(ctx)
		if err != nil {
			return err
		}
		legacy, err := firstSnapshot(ctx, legacySub)
		if err != nil {
			return err
		}
		feed.SetLegacy(legacy)

		for _, u := range feed.Current() {
			fmt.Printf("%-30s %-34s %s\n", u.ID, u.Email, u.Role)
		}
		return nil

	case "revenue":
		total, err := cont.OrderUC.TotalRevenue(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("total revenue: %.2f\n", total)
		return nil

	case "order-status":
		if len(args) != 3 {
			usage()
		}
		if err := cont.OrderUC.SetStatus(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("order %s -> %s\n", args[1], args[2])
		return nil

	case "user-role":
		if len(args) != 3 {
			usage()
		}
		if err := cont.UserUC.SetRole(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("user %s -> %s\n", args[1], args[2])
		return nil
	}

	usage()
	return nil
}

// firstSnapshot waits for the initial snapshot of a fresh subscription and
// releases it.
func firstSnapshot[T any](ctx context.Context, sub *common.Subscription[[]T]) ([]T, error) {
	defer sub.Close()
	timer := time.NewTimer(snapshotTimeout)
	defer timer.Stop()
	select {
	case snapshot := <-sub.Updates():
		return snapshot, nil
	case <-sub.Done():
		return nil, sub.Err()
	case <-timer.C:
		return nil, errors.New("timed out waiting for snapshot")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
