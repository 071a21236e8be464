// Package postfix implements an integer calculator for infix expressions.
//
// Expressions are non-negative integers combined with the binary operators
// + - * / and grouped with parentheses, e.g. "10 + (20 * 3) / 2". Evaluation
// runs in three steps: the parentheses are checked for balance, the infix
// tokens are converted to postfix (reverse Polish) order, and the postfix
// queue is evaluated with a value stack. Each step is available on its own.
//
// Division truncates toward zero, and arithmetic wraps on overflow like any
// other Go int arithmetic. Every error resulting from invalid input
// implements InputError.
//
package postfix
