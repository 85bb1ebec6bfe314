package Expressions

import "github.com/g-m-twostay/go-linear/Stacks"

// openerOf maps each closing bracket to the opener it must match.
var openerOf = map[rune]rune{')': '(', ']': '[', '}': '{'}

// IsBalanced reports whether every (, [ and { in expr is closed by its partner in the right
// order. Any other character is ignored, so the empty string is balanced.
// Time: O(n); Space: O(n)
func IsBalanced(expr string) bool {
	st := Stacks.MakeArrayStack[rune](0)
	for _, r := range expr {
		switch r {
		case '(', '[', '{':
			st.Push(r)
		case ')', ']', '}':
			top, err := st.Pop()
			if err != nil || top != openerOf[r] {
				return false
			}
		}
	}
	return st.Empty()
}
