// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/strbytes"
	"cloudeng.io/strbytes/transform"
)

// processor applies a transform.Func to a set of files.
type processor struct {
	fn      transform.Func
	resize  bool
	inPlace bool
	out     io.Writer
}

func newProcessor(cl *CommonFlags, fn transform.Func, resize bool) *processor {
	return &processor{
		fn:      fn,
		resize:  resize,
		inPlace: cl.InPlace,
		out:     os.Stdout,
	}
}

// run processes each of files in turn, continuing past failures. The
// returned error, if any, is an errors.M of the per-file errors.
func (p *processor) run(ctx context.Context, files []string) error {
	errs := &errors.M{}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		if err := p.process(ctx, file); err != nil {
			ctxlog.Logger(ctx).Error("failed to transform file", "file", file, "error", err)
			errs.Append(errors.Annotate(file, err))
		}
	}
	return errs.Err()
}

func (p *processor) process(ctx context.Context, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	buf, err := strbytes.FromBytes(data)
	if err != nil {
		return err
	}
	mutate := buf.Mutate
	if p.resize {
		mutate = buf.MutateResize
	}
	if err := mutate(p.fn); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("transformed file", "file", file, "size.before", len(data), "size.after", buf.Len())
	if !p.inPlace {
		_, err := p.out.Write(buf.Bytes())
		return err
	}
	return replaceFile(file, buf.Bytes())
}

// replaceFile writes data to a temporary file in the same directory as
// file and then renames it over file, so that file is never left
// partially written.
func replaceFile(file string, data []byte) error {
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	wr, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %q: %w", file, err)
	}
	tmpName := wr.Name()
	defer os.Remove(tmpName) //nolint:errcheck
	if _, err := wr.Write(data); err != nil {
		wr.Close()
		return fmt.Errorf("writing %q: %w", tmpName, err)
	}
	if err := wr.Chmod(info.Mode().Perm()); err != nil {
		wr.Close()
		return err
	}
	if err := wr.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, file); err != nil {
		return fmt.Errorf("renaming %q to %q: %w", tmpName, file, err)
	}
	return nil
}

// validateAll reports on the validity of each of files to out.
func validateAll(ctx context.Context, out io.Writer, files []string) error {
	errs := &errors.M{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			errs.Append(err)
			continue
		}
		if _, err := strbytes.FromBytes(data); err != nil {
			ctxlog.Logger(ctx).Warn("invalid utf-8", "file", file, "error", err)
			fmt.Fprintf(out, "%s: %v\n", file, err)
			errs.Append(errors.Annotate(file, err))
			continue
		}
		fmt.Fprintf(out, "%s: ok (%d bytes)\n", file, len(data))
	}
	return errs.Err()
}

func asciiFlag(name, val string) (byte, error) {
	if len(val) != 1 {
		return 0, fmt.Errorf("--%s must be a single ASCII character: %q", name, val)
	}
	if val[0] >= 0x80 {
		return 0, fmt.Errorf("--%s: %q: %w", name, val, transform.ErrNotASCII)
	}
	return val[0], nil
}

func validateFiles(ctx context.Context, values any, args []string) error {
	cl := values.(*validateFlags)
	ctx, done, err := withLogger(ctx, &cl.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return validateAll(ctx, os.Stdout, args)
}

func transformFiles(ctx context.Context, cl *CommonFlags, fn transform.Func, resize bool, files []string) error {
	ctx, done, err := withLogger(ctx, &cl.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	return newProcessor(cl, fn, resize).run(ctx, files)
}

func upperFiles(ctx context.Context, values any, args []string) error {
	return transformFiles(ctx, values.(*CommonFlags), transform.ASCIIUpper, false, args)
}

func lowerFiles(ctx context.Context, values any, args []string) error {
	return transformFiles(ctx, values.(*CommonFlags), transform.ASCIILower, false, args)
}

func reverseFiles(ctx context.Context, values any, args []string) error {
	return transformFiles(ctx, values.(*CommonFlags), transform.ReverseRunes, false, args)
}

func replaceFiles(ctx context.Context, values any, args []string) error {
	cl := values.(*replaceFlags)
	from, err := asciiFlag("from", cl.From)
	if err != nil {
		return err
	}
	to, err := asciiFlag("to", cl.To)
	if err != nil {
		return err
	}
	return transformFiles(ctx, &cl.CommonFlags, transform.ReplaceASCII(from, to), false, args)
}

func rewriteFiles(ctx context.Context, values any, args []string) error {
	cl := values.(*rewriteFlags)
	if len(cl.Rules.Values) == 0 {
		return fmt.Errorf("at least one --rule must be specified")
	}
	fn, err := transform.ParseRewrite(cl.Rules.Values...)
	if err != nil {
		return err
	}
	return transformFiles(ctx, &cl.CommonFlags, fn, true, args)
}

func applyFiles(ctx context.Context, values any, args []string) error {
	cl := values.(*applyFlags)
	if len(cl.Config) == 0 {
		return fmt.Errorf("--config must be specified")
	}
	var cfg Config
	if err := cmdutil.ParseYAMLConfigFile(cl.Config, &cfg); err != nil {
		return err
	}
	fn, err := cfg.Transform()
	if err != nil {
		return err
	}
	return transformFiles(ctx, &cl.CommonFlags, fn, cfg.Resizes(), args)
}
