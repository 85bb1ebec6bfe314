package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/g-m-twostay/go-linear/Expressions"
)

const postfixFlag = "postfix"

// NewBalanceCommand returns the command checking bracket balance.
func NewBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <expression>",
		Short: "Report whether the brackets in an expression are balanced",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Expressions.IsBalanced(strings.Join(args, " ")))
			return err
		},
	}
}

// NewPostfixCommand returns the command converting infix to postfix.
func NewPostfixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "postfix <expression>",
		Short: "Convert an infix expression to postfix notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Expressions.InfixToPostfix(strings.Join(args, " ")))
			return err
		},
	}
}

// NewEvalCommand returns the command evaluating an expression of single digit operands.
func NewEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an infix (or, with --postfix, postfix) expression of single digit operands",
		Args:  cobra.MinimumNArgs(1),
		RunE:  eval,
	}
	cmd.Flags().Bool(postfixFlag, false, "treat the expression as postfix")
	return cmd
}

func eval(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	expr := strings.Join(args, " ")
	postfix, err := cmd.Flags().GetBool(postfixFlag)
	if err != nil {
		return err
	}
	if !postfix {
		expr = Expressions.InfixToPostfix(expr)
		log.Debug("converted to postfix", zap.String("postfix", expr))
	}
	v, err := Expressions.EvaluatePostfix(expr)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
	return err
}
