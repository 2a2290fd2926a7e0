package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"trip-desk/internal/bootstrap"
	"trip-desk/internal/docpath"
	"trip-desk/internal/models"
	"trip-desk/internal/service"
	"trip-desk/pkg/config"
	"trip-desk/pkg/logger"

	"go.uber.org/zap"
)

// docdiff prints the path-level differences between two recommendation
// documents, read from files or from two stored trips. Documents are compared
// as written: a numeric string differs from the number, and fields the
// editor does not model are reported. It exits 1 when the documents differ.
//
//	docdiff -a before.json -b after.json [-fill]
//	docdiff <tripA> <tripB>
func main() {
	fileA := flag.String("a", "", "First recommendation JSON file")
	fileB := flag.String("b", "", "Second recommendation JSON file")
	fill := flag.Bool("fill", false, "Treat absent collections in files as empty lists")
	flag.Parse()

	var (
		changes []docpath.Change
		err     error
	)
	switch {
	case *fileA != "" && *fileB != "":
		changes, err = diffFiles(*fileA, *fileB, *fill)
	case flag.NArg() == 2:
		changes, err = diffTrips(flag.Arg(0), flag.Arg(1))
	default:
		fmt.Fprintln(os.Stderr, "usage: docdiff -a a.json -b b.json [-fill] | docdiff <tripA> <tripB>")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "docdiff: %v\n", err)
		os.Exit(2)
	}

	writeChanges(os.Stdout, changes)
	if len(changes) > 0 {
		os.Exit(1)
	}
}

func diffFiles(a, b string, fill bool) ([]docpath.Change, error) {
	docA, err := readDocument(a, fill)
	if err != nil {
		return nil, err
	}
	docB, err := readDocument(b, fill)
	if err != nil {
		return nil, err
	}
	return docpath.Diff(docA, docB), nil
}

// readDocument returns the JSON tree of a recommendation file. With fill,
// absent collections are created empty so they compare equal to [].
func readDocument(path string, fill bool) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := models.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc == nil {
		doc = models.EmptyDocument("")
	}
	if !fill {
		return doc.Tree(), nil
	}
	tree, err := models.FillCollections(doc.Tree())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

func diffTrips(a, b string) ([]docpath.Change, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init("error"); err != nil {
		return nil, err
	}
	defer logger.Sync()
	log := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stores, err := bootstrap.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	defer stores.Close()

	changes, err := service.NewTripService(stores.Trips, log).Compare(ctx, a, b)
	if err != nil {
		log.Debug("Compare failed", zap.String("a", a), zap.String("b", b), zap.Error(err))
		return nil, err
	}
	return changes, nil
}

func writeChanges(w io.Writer, changes []docpath.Change) {
	for _, c := range changes {
		switch c.Kind {
		case docpath.Added:
			fmt.Fprintf(w, "+ %s: %s\n", c.Path, render(c.After))
		case docpath.Removed:
			fmt.Fprintf(w, "- %s: %s\n", c.Path, render(c.Before))
		default:
			fmt.Fprintf(w, "~ %s: %s -> %s\n", c.Path, render(c.Before), render(c.After))
		}
	}
}

func render(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
