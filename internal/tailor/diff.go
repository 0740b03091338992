package tailor

// Diff compares original and tailored resume text line by line (the rewriter
// keeps line counts equal, so lines pair by index) and emits one Highlight
// per non-equal opcode of a minimal character edit script.
func Diff(originalText, tailoredText string) []Highlight {
	origLines := SplitLines(originalText)
	tailLines := SplitLines(tailoredText)
	n := len(origLines)
	if len(tailLines) < n {
		n = len(tailLines)
	}

	var highlights []Highlight
	for i := 0; i < n; i++ {
		if origLines[i] == tailLines[i] {
			continue
		}
		orig := []rune(origLines[i])
		tail := []rune(tailLines[i])
		for _, op := range opcodes(orig, tail) {
			switch op.tag {
			case opEqual:
				continue
			case opInsert:
				highlights = append(highlights, Highlight{
					Line:     i,
					Kind:     HighlightAddition,
					Position: op.i1,
					New:      string(tail[op.j1:op.j2]),
					Context:  tailLines[i],
				})
			default: // replace or delete
				highlights = append(highlights, Highlight{
					Line:     i,
					Kind:     HighlightModification,
					Position: op.i1,
					Original: string(orig[op.i1:op.i2]),
					New:      string(tail[op.j1:op.j2]),
					Context:  tailLines[i],
				})
			}
		}
	}
	return highlights
}

type opTag int

const (
	opEqual opTag = iota
	opInsert
	opDelete
	opReplace
)

// opcode is one run of a minimal edit script: a[i1:i2] corresponds to
// b[j1:j2].
type opcode struct {
	tag            opTag
	i1, i2, j1, j2 int
}

// opcodes computes an LCS-based edit script between rune slices a and b.
// Adjacent delete+insert runs are merged into a replace.
func opcodes(a, b []rune) []opcode {
	m, n := len(a), len(b)
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				lcs[i][j] = lcs[i-1][j-1] + 1
			} else if lcs[i-1][j] >= lcs[i][j-1] {
				lcs[i][j] = lcs[i-1][j]
			} else {
				lcs[i][j] = lcs[i][j-1]
			}
		}
	}

	// Walk back collecting single-step ops, then reverse and coalesce.
	type step struct {
		tag  opTag
		i, j int
	}
	var steps []step
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			steps = append(steps, step{opEqual, i - 1, j - 1})
			i--
			j--
		case j > 0 && (i == 0 || lcs[i][j-1] >= lcs[i-1][j]):
			steps = append(steps, step{opInsert, i, j - 1})
			j--
		default:
			steps = append(steps, step{opDelete, i - 1, j})
			i--
		}
	}
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}

	var ops []opcode
	for _, s := range steps {
		var next opcode
		switch s.tag {
		case opEqual:
			next = opcode{opEqual, s.i, s.i + 1, s.j, s.j + 1}
		case opInsert:
			next = opcode{opInsert, s.i, s.i, s.j, s.j + 1}
		default:
			next = opcode{opDelete, s.i, s.i + 1, s.j, s.j}
		}
		if len(ops) > 0 && mergeable(ops[len(ops)-1], next) {
			ops[len(ops)-1] = merge(ops[len(ops)-1], next)
			continue
		}
		ops = append(ops, next)
	}
	return ops
}

func mergeable(prev, next opcode) bool {
	if prev.i2 != next.i1 || prev.j2 != next.j1 {
		return false
	}
	if prev.tag == next.tag {
		return true
	}
	// delete followed by insert (or either with replace) collapses into replace
	return prev.tag != opEqual && next.tag != opEqual
}

func merge(prev, next opcode) opcode {
	tag := prev.tag
	if prev.tag != next.tag {
		tag = opReplace
	}
	return opcode{tag, prev.i1, next.i2, prev.j1, next.j2}
}
