package util

import (
	"strings"

	"golang.org/x/exp/constraints"
)

func Map[A any, B any](items []A, f func(A) B) []B {
	res := make([]B, 0, len(items))
	for _, v := range items {
		res = append(res, f(v))
	}
	return res
}

func Filter[A any](items []A, keep func(A) bool) []A {
	var res []A
	for _, v := range items {
		if keep(v) {
			res = append(res, v)
		}
	}
	return res
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}

func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(s string) []string {
	parts := Map(strings.Split(s, ","), strings.TrimSpace)
	return Filter(parts, func(p string) bool { return p != "" })
}
