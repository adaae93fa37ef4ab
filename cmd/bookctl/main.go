package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"

	"bookcatalog/internal/book"
	"bookcatalog/internal/client"
)

func main() {
	loadEnvFiles()

	var (
		url     = flag.String("url", serverURL(), "Catalog API base URL")
		command = flag.String("command", "list", "Command: list, get, add, edit, delete")
		id      = flag.Int("id", 0, "Book id for get, edit and delete")
		title   = flag.String("title", "", "Book title for add and edit")
		author  = flag.String("author", "", "Book author for add and edit")
		rps     = flag.Float64("rps", 5, "Maximum requests per second")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := client.New(*url, client.WithRateLimit(*rps), client.WithMaxRetries(2))
	if err := run(ctx, c, os.Stdout, *command, *id, *title, *author); err != nil {
		log.Fatalf("%s failed: %v", *command, err)
	}
}

func run(ctx context.Context, c *client.Client, out io.Writer, command string, id int, title, author string) error {
	cat := client.NewCatalog(c, func(books []book.Book) { renderTable(out, books) })

	switch command {
	case "list":
		return cat.Refresh(ctx)
	case "get":
		b, err := c.Get(ctx, id)
		if err != nil {
			return err
		}
		renderTable(out, []book.Book{b})
		return nil
	case "add":
		newID, err := cat.Add(ctx, title, author)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Book created with id %d\n", newID)
		return nil
	case "edit":
		return cat.Edit(ctx, id, title, author)
	case "delete":
		return cat.Remove(ctx, id)
	default:
		return fmt.Errorf("unknown command: %s. Use: list, get, add, edit, delete", command)
	}
}

func renderTable(out io.Writer, books []book.Book) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", b.ID, b.Title, b.Author)
	}
	_ = tw.Flush()
}
