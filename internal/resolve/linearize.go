// SPDX-License-Identifier: Apache-2.0
package resolve

import (
	"solv/internal/ast"
	"solv/internal/errors"
)

// C3 linearization of the inheritance graph, following the upstream
// language's convention: the direct base list is reversed before the
// merge, so "contract C is A, B" linearizes to [C, B, A].

const (
	unvisited = iota
	inProgress
	done
)

func (r *Resolver) linearizeAll() {
	state := make(map[*ast.Contract]int)
	for _, c := range r.unit.Contracts {
		r.linearize(c, state)
	}
}

func (r *Resolver) linearize(c *ast.Contract, state map[*ast.Contract]int) []*ast.Contract {
	switch state[c] {
	case inProgress:
		r.addError(errors.InheritanceCycle(c.Name.Value, c))
		return nil
	case done:
		return c.Linearized
	}
	state[c] = inProgress

	var seqs [][]*ast.Contract
	var direct []*ast.Contract
	for i := len(c.Bases) - 1; i >= 0; i-- {
		base := c.Bases[i].Target
		if base == nil {
			continue // unknown base already reported
		}
		lin := r.linearize(base, state)
		if lin == nil {
			continue // cycle already reported
		}
		seqs = append(seqs, lin)
		direct = append(direct, base)
	}
	if len(direct) > 0 {
		seqs = append(seqs, direct)
	}

	merged, ok := c3Merge(seqs)
	if !ok {
		r.addError(errors.LinearizationFailure(c.Name.Value, c))
		merged = nil
	}
	c.Linearized = append([]*ast.Contract{c}, merged...)
	state[c] = done
	return c.Linearized
}

// c3Merge performs the C3 merge step: repeatedly take a head that occurs
// in no tail. Returns false when no valid ordering exists.
func c3Merge(seqs [][]*ast.Contract) ([]*ast.Contract, bool) {
	work := make([][]*ast.Contract, 0, len(seqs))
	for _, s := range seqs {
		if len(s) > 0 {
			work = append(work, append([]*ast.Contract(nil), s...))
		}
	}

	var result []*ast.Contract
	for len(work) > 0 {
		candidate := pickHead(work)
		if candidate == nil {
			return result, false
		}
		result = append(result, candidate)

		next := work[:0]
		for _, s := range work {
			if len(s) > 0 && s[0] == candidate {
				s = s[1:]
			}
			if len(s) > 0 {
				next = append(next, s)
			}
		}
		work = next
	}
	return result, true
}

// pickHead returns the first sequence head that appears in no other
// sequence's tail, or nil when the merge is stuck.
func pickHead(work [][]*ast.Contract) *ast.Contract {
	for _, s := range work {
		head := s[0]
		blocked := false
		for _, other := range work {
			for _, entry := range other[1:] {
				if entry == head {
					blocked = true
					break
				}
			}
			if blocked {
				break
			}
		}
		if !blocked {
			return head
		}
	}
	return nil
}
