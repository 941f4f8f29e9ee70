package world

import "testing"

func TestClassifyEdgeIsTotal(t *testing.T) {
	known := map[EdgeType]bool{
		EdgeNone: true, EdgeLeft: true, EdgeRight: true, EdgeTop: true, EdgeBot: true,
		EdgeBotLeft: true, EdgeTopLeft: true, EdgeTopRight: true, EdgeBotRight: true,
		EdgeBotLeftOnly: true, EdgeTopLeftOnly: true, EdgeTopRightOnly: true, EdgeBotRightOnly: true,
		EdgeRareTRB: true, EdgeRareLTR: true, EdgeRareRBL: true, EdgeRareBLT: true, EdgeRareTB: true,
	}
	for bits := 0; bits < 256; bits++ {
		var m EdgeMask
		for i := range m {
			m[i] = bits&(1<<i) != 0
		}
		got := ClassifyEdge(m)
		if !known[got] {
			t.Fatalf("mask %08b classified as %q", bits, got)
		}
	}
}

func TestClassifyEdgePrecedence(t *testing.T) {
	all := EdgeMask{true, true, true, true, true, true, true, true}
	with := func(m EdgeMask, off ...Direction) EdgeMask {
		for _, d := range off {
			m[d] = false
		}
		return m
	}

	cases := []struct {
		name string
		mask EdgeMask
		want EdgeType
	}{
		{"uniform", all, EdgeNone},
		{"left only", with(all, DirLeft), EdgeLeft},
		{"left only ignores diagonals", with(all, DirLeft, DirTopLeft, DirBotLeft), EdgeLeft},
		{"right only", with(all, DirRight), EdgeRight},
		{"top only", with(all, DirTop), EdgeTop},
		{"bot only", with(all, DirBot), EdgeBot},
		{"bot left", with(all, DirLeft, DirBot), EdgeBotLeft},
		{"top left", with(all, DirLeft, DirTop), EdgeTopLeft},
		{"top right", with(all, DirTop, DirRight), EdgeTopRight},
		{"bot right", with(all, DirRight, DirBot), EdgeBotRight},
		{"inner bot left", with(all, DirBotLeft), EdgeBotLeftOnly},
		{"inner top left", with(all, DirTopLeft), EdgeTopLeftOnly},
		{"inner top right", with(all, DirTopRight), EdgeTopRightOnly},
		{"inner bot right", with(all, DirBotRight), EdgeBotRightOnly},
		{"inner corners prefer bot left", with(all, DirBotLeft, DirTopRight), EdgeBotLeftOnly},
		{"rare trb", with(all, DirTop, DirRight, DirBot), EdgeRareTRB},
		{"rare ltr", with(all, DirLeft, DirTop, DirRight), EdgeRareLTR},
		{"rare rbl", with(all, DirRight, DirBot, DirLeft), EdgeRareRBL},
		{"rare blt", with(all, DirBot, DirLeft, DirTop), EdgeRareBLT},
		{"rare tb", with(all, DirLeft, DirRight), EdgeRareTB},
		{"top and bottom differ", with(all, DirTop, DirBot), EdgeNone},
		{"isolated", EdgeMask{}, EdgeNone},
	}
	for _, tc := range cases {
		if got := ClassifyEdge(tc.mask); got != tc.want {
			t.Fatalf("%s: got=%s want=%s", tc.name, got, tc.want)
		}
	}
}
