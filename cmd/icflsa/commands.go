package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/icflsa"
	"github.com/npillmayer/icflsa/factor"
	"github.com/npillmayer/icflsa/fasta"
	"github.com/npillmayer/icflsa/inspect"
	"github.com/npillmayer/icflsa/internal/sacheck"
	"github.com/npillmayer/icflsa/trie"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var (
	inputFlag = &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "Sequence file to read",
		Required: true,
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Usage:   "Input format, fasta or plain (one sequence per line)",
		Value:   "fasta",
		EnvVars: []string{"ICFLSA_FORMAT"},
	}

	upperFlag = &cli.BoolFlag{
		Name:  "upper",
		Usage: "Fold FASTA sequence data to upper case",
	}

	chunkSizeFlag = &cli.IntFlag{
		Name:    "chunk-size",
		Aliases: []string{"c"},
		Usage:   "Cut ICFL factors into chunks of this size; no chunking if not set",
		EnvVars: []string{"ICFLSA_CHUNK_SIZE"},
	}

	verifyFlag = &cli.BoolFlag{
		Name:    "verify",
		Usage:   "Check every suffix array against a reference implementation",
		EnvVars: []string{"ICFLSA_VERIFY"},
	}

	dumpFlag = &cli.BoolFlag{
		Name:  "dump",
		Usage: "Print factors, chunks and the merged trie",
	}

	printFlag = &cli.BoolFlag{
		Name:  "print",
		Usage: "Print the suffix arrays",
	}

	runCmd = &cli.Command{
		Action: runSuffixArrays,
		Name:   "run",
		Usage:  "Computes suffix arrays for every sequence of a file",
		Flags: []cli.Flag{
			inputFlag,
			formatFlag,
			upperFlag,
			chunkSizeFlag,
			verifyFlag,
			dumpFlag,
			printFlag,
		},
	}

	factorCmd = &cli.Command{
		Action: printFactors,
		Name:   "factor",
		Usage:  "Prints Lyndon and ICFL factorizations for every sequence of a file",
		Flags: []cli.Flag{
			inputFlag,
			formatFlag,
			upperFlag,
		},
	}
)

// openSequences opens the input file and returns a reader for its format.
// The caller has to close the returned file.
func openSequences(cliCtx *cli.Context) (icflsa.SequenceReader, io.Closer, error) {
	f, err := os.Open(cliCtx.String(inputFlag.Name))
	if err != nil {
		return nil, nil, err
	}
	switch format := cliCtx.String(formatFlag.Name); format {
	case "fasta":
		r := fasta.NewReader(f)
		if cliCtx.Bool(upperFlag.Name) {
			r.UpperCase()
		}
		return r, f, nil
	case "plain":
		return fasta.NewLineReader(f), f, nil
	default:
		_ = f.Close()
		return nil, nil, errors.Errorf("unknown input format %q", format)
	}
}

func runSuffixArrays(cliCtx *cli.Context) error {
	reader, closer, err := openSequences(cliCtx)
	if err != nil {
		return err
	}
	defer closer.Close()
	var opts []icflsa.Option
	if cliCtx.IsSet(chunkSizeFlag.Name) {
		opts = append(opts, icflsa.WithChunkSize(cliCtx.Int(chunkSizeFlag.Name)))
	}
	out := cliCtx.App.Writer
	dump := cliCtx.Bool(dumpFlag.Name)
	var dumped error
	if dump {
		opts = append(opts, icflsa.WithTrieHook(func(t *trie.Trie) {
			t.Stats()
			if dumped == nil {
				dumped = inspect.Dump(out, t)
			}
		}))
	}
	count := 0
	for {
		id, seq, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		res, err := icflsa.Compute(seq, opts...)
		if err != nil {
			return errors.Wrapf(err, "sequence %q", id)
		}
		if dumped != nil {
			return dumped
		}
		count++
		fmt.Fprintf(out, "%s: n=%d factors=%d\n", id, len(seq), len(res.ICFL))
		if dump && res.Layout != nil {
			if err := inspect.DumpFactors(out, seq, res.Layout); err != nil {
				return err
			}
		}
		if cliCtx.Bool(printFlag.Name) {
			fmt.Fprintf(out, "  suffix array: %v\n", res.SuffixArray)
		}
		fmt.Fprintf(out, "  %s\n", res.Counters)
		if cliCtx.Bool(verifyFlag.Name) {
			if err := sacheck.Verify(seq, res.SuffixArray); err != nil {
				return errors.Wrapf(err, "sequence %q", id)
			}
			fmt.Fprintln(out, "  verified")
		}
	}
	fmt.Fprintf(out, "%d sequences\n", count)
	return nil
}

func printFactors(cliCtx *cli.Context) error {
	reader, closer, err := openSequences(cliCtx)
	if err != nil {
		return err
	}
	defer closer.Close()
	out := cliCtx.App.Writer
	for {
		id, seq, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: n=%d\n", id, len(seq))
		fmt.Fprintf(out, "  lyndon: %s\n", joinFactors(factor.LyndonWords(seq)))
		fmt.Fprintf(out, "  icfl:   %s\n", joinFactors(factor.ICFLWords(seq)))
	}
}

func joinFactors(words [][]byte) string {
	s := ""
	for i, w := range words {
		if i > 0 {
			s += " | "
		}
		s += string(w)
	}
	return s
}
