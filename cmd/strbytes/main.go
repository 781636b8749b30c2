// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command strbytes applies UTF-8 preserving, byte level transformations
// to files. Each file is transformed as a single transaction: if any step
// fails, or the result is not valid UTF-8, the file is left untouched.
package main

import (
	"context"
	"os"
	"os/signal"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

type CommonFlags struct {
	cmdutil.LoggingFlags
	InPlace bool `subcmd:"in-place,false,'overwrite each file with its transformed contents rather than writing them to stdout'"`
}

type validateFlags struct {
	cmdutil.LoggingFlags
}

type replaceFlags struct {
	CommonFlags
	From string `subcmd:"from,,'the ASCII character to be replaced'"`
	To   string `subcmd:"to,,'the ASCII character to replace it with'"`
}

type rewriteFlags struct {
	CommonFlags
	Rules flags.Repeating `subcmd:"rule,,'a rewrite rule of the form s/<regexp>/<replacement>/, may be repeated, the first matching rule is applied'"`
}

type applyFlags struct {
	CommonFlags
	Config string `subcmd:"config,,'yaml file containing the steps to be applied to each file'"`
}

func init() {
	validateCmd := subcmd.NewCommand("validate",
		subcmd.MustRegisterFlagStruct(&validateFlags{}, nil, nil),
		validateFiles, subcmd.AtLeastNArguments(1))
	validateCmd.Document(`report whether each file contains valid UTF-8 and if not, the offset of the first invalid byte sequence.`, "<file>...")

	upperCmd := subcmd.NewCommand("upper",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		upperFiles, subcmd.AtLeastNArguments(1))
	upperCmd.Document(`convert ASCII letters to upper case, all other runes are unchanged.`, "<file>...")

	lowerCmd := subcmd.NewCommand("lower",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		lowerFiles, subcmd.AtLeastNArguments(1))
	lowerCmd.Document(`convert ASCII letters to lower case, all other runes are unchanged.`, "<file>...")

	replaceCmd := subcmd.NewCommand("replace",
		subcmd.MustRegisterFlagStruct(&replaceFlags{}, nil, nil),
		replaceFiles, subcmd.AtLeastNArguments(1))
	replaceCmd.Document(`replace every occurrence of one ASCII character with another.`, "<file>...")

	reverseCmd := subcmd.NewCommand("reverse",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		reverseFiles, subcmd.AtLeastNArguments(1))
	reverseCmd.Document(`reverse the order of the runes in each file.`, "<file>...")

	rewriteCmd := subcmd.NewCommand("rewrite",
		subcmd.MustRegisterFlagStruct(&rewriteFlags{}, nil, nil),
		rewriteFiles, subcmd.AtLeastNArguments(1))
	rewriteCmd.Document(`rewrite the contents of each file using the first matching regular expression rule.`, "<file>...")

	applyCmd := subcmd.NewCommand("apply",
		subcmd.MustRegisterFlagStruct(&applyFlags{}, nil, nil),
		applyFiles, subcmd.AtLeastNArguments(1))
	applyCmd.Document(`apply the sequence of steps in a yaml config file to each file.

The config file has the form:

steps:
  - op: replace
    from: " "
    to: "-"
  - op: rewrite
    rules: ["s/foo/bar/"]
  - op: upper

Valid ops are upper, lower, replace, reverse and rewrite. All of the steps
are applied to a file as a single transaction.`, "<file>...")

	cmdSet = subcmd.NewCommandSet(validateCmd, upperCmd, lowerCmd,
		replaceCmd, reverseCmd, rewriteCmd, applyCmd)
	cmdSet.Document(`apply UTF-8 preserving transformations to files.

Each file is read in its entirety and must contain valid UTF-8. The
requested transformation is applied to a private copy of its contents
which is validated before being written to stdout or, with --in-place,
back to the file. A file that fails to transform, or whose transformed
contents are not valid UTF-8, is never written.`)
}

// withLogger configures the logger specified by lf and stores it
// in the returned context.
func withLogger(ctx context.Context, lf *cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	cmdSet.MustDispatch(ctx)
}
