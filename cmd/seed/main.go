package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
)

func main() {
	var (
		count = flag.Int("count", 1000, "Number of books to generate")
		out   = flag.String("out", "seed.yaml", "Seed file to write, - for stdout")
	)
	flag.Parse()

	if *count < 0 {
		log.Fatal("count must not be negative")
	}

	log.Printf("Generating %d books...", *count)
	data, err := config.EncodeSeed(generateBooks(*count, rand.New(rand.NewSource(rand.Int63()))))
	if err != nil {
		log.Fatalf("Failed to encode seed: %v", err)
	}

	if *out == "-" {
		_, _ = os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write seed file: %v", err)
	}
	log.Printf("Wrote %d books to %s, start the API with BOOKS_SEED_FILE=%s", *count, *out, *out)
}

var (
	firstNames = []string{"Ada", "Jane", "Leo", "Mary", "Fyodor", "Toni", "Italo", "Ursula", "Gabriel", "Chinua"}
	lastNames  = []string{"Austen", "Tolstoy", "Shelley", "Morrison", "Calvino", "Le Guin", "Marquez", "Achebe", "Woolf", "Borges"}
)

// generateBooks returns n books with ids 1..n.
func generateBooks(n int, rng *rand.Rand) []book.Book {
	books := make([]book.Book, 0, n)
	for i := 0; i < n; i++ {
		books = append(books, book.Book{
			ID:     i + 1,
			Title:  fmt.Sprintf("Book Title %d - %s", i+1, randomWord(rng)),
			Author: firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
		})
		if (i+1)%1000 == 0 {
			log.Printf("Generated %d/%d books", i+1, n)
		}
	}
	return books
}

func randomWord(rng *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rng.Intn(len(words))]
}
