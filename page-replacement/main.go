package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pedrior/os-algorithms/internal/pagereplace"
	"github.com/pedrior/os-algorithms/internal/report"
)

func main() {
	// CLI args
	f, closeFile, err := openReferenceFile(os.Args...)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFile()

	// Load frame capacity and the reference string
	capacity, refs, err := loadReferences(f)
	if err != nil {
		log.Fatal(err)
	}

	results, err := runPolicies(capacity, refs)
	if err != nil {
		log.Fatal(err)
	}

	report.Title(os.Stdout, "Page replacement")
	report.FaultTable(os.Stdout, results)
}

// runPolicies replays the reference string under every replacement
// policy and collects the fault counts.
func runPolicies(capacity int, refs []int64) ([]report.PolicyFaults, error) {
	policies := []struct {
		name string
		run  func(int, []int64) (int, error)
	}{
		{"FIFO", pagereplace.FIFO},
		{"Optimal", pagereplace.Optimal},
		{"LRU", pagereplace.LRU},
	}

	results := make([]report.PolicyFaults, 0, len(policies))
	for _, p := range policies {
		faults, err := p.run(capacity, refs)
		if err != nil {
			return nil, fmt.Errorf("%w: replaying %s", err, p.name)
		}
		results = append(results, report.PolicyFaults{Policy: p.name, Faults: faults})
	}

	return results, nil
}

func openReferenceFile(args ...string) (*os.File, func(), error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%w: must give a reference file to process", ErrInvalidArgs)
	}
	f, err := os.Open(args[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening reference file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing reference file", err)
		}
	}

	return f, closeFn, nil
}

//region Loading references.

var (
	ErrInvalidArgs     = errors.New("invalid args")
	ErrMissingCapacity = errors.New("missing frame capacity")
)

// loadReferences reads the frame capacity from the first numeric line
// and the page reference string from the rest, one page per line. Lines
// that do not parse are logged and skipped.
func loadReferences(r io.Reader) (int, []int64, error) {
	var (
		capacity    int
		hasCapacity bool
		refs        []int64
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			log.Printf("skipping %q: not a number", line)
			continue
		}
		if !hasCapacity {
			capacity = int(n)
			hasCapacity = true
			continue
		}
		refs = append(refs, n)
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("%w: reading references", err)
	}
	if !hasCapacity {
		return 0, nil, ErrMissingCapacity
	}

	return capacity, refs, nil
}

//endregion
