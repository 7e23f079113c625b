package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/signadot/scorex/ir"
	"github.com/signadot/scorex/parse"
	"github.com/signadot/scorex/source"

	"github.com/scott-cotton/cli"
)

func loadSource(ctx context.Context, cc *cli.Context, src string) ([]byte, error) {
	l := &source.Loader{Stdin: cc.In}
	return l.Load(ctx, src)
}

func getDoc(ctx context.Context, cc *cli.Context, src string, opts ...parse.ParseOption) (*ir.Node, error) {
	if src == "-" {
		var in io.Reader = cc.In
		if in == nil {
			in = os.Stdin
		}
		return readDoc(ctx, in, opts...)
	}
	d, err := loadSource(ctx, cc, src)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", src, err)
	}
	return doc, nil
}

// readDoc parses XML streamed on r. Compressed containers are left to the
// source loader.
func readDoc(ctx context.Context, r io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	in := bufio.NewReader(r)
	head, _ := in.Peek(4)
	if !source.IsMXL(head) {
		doc, err := parse.ParseReader(in, opts...)
		if err != nil {
			return nil, fmt.Errorf("error decoding stdin: %w", err)
		}
		return doc, nil
	}
	l := &source.Loader{Stdin: in}
	d, err := l.Load(ctx, "-")
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding stdin: %w", err)
	}
	return doc, nil
}

func writeFile(path string, d []byte) error {
	if err := os.WriteFile(path, d, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

func oneArg(name string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s requires 1 source, got %v", cli.ErrUsage, name, args)
	}
	return args[0], nil
}
