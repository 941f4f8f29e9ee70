package world

type EdgeType string

const (
	EdgeNone EdgeType = "none"

	EdgeLeft  EdgeType = "left"
	EdgeRight EdgeType = "right"
	EdgeTop   EdgeType = "top"
	EdgeBot   EdgeType = "bot"

	EdgeBotLeft  EdgeType = "bot_left"
	EdgeTopLeft  EdgeType = "top_left"
	EdgeTopRight EdgeType = "top_right"
	EdgeBotRight EdgeType = "bot_right"

	EdgeBotLeftOnly  EdgeType = "bot_left_only"
	EdgeTopLeftOnly  EdgeType = "top_left_only"
	EdgeTopRightOnly EdgeType = "top_right_only"
	EdgeBotRightOnly EdgeType = "bot_right_only"

	EdgeRareTRB EdgeType = "rare_trb"
	EdgeRareLTR EdgeType = "rare_ltr"
	EdgeRareRBL EdgeType = "rare_rbl"
	EdgeRareBLT EdgeType = "rare_blt"
	EdgeRareTB  EdgeType = "rare_tb"

	EdgeStaircase    EdgeType = "staircase"
	EdgeStaircaseTop EdgeType = "staircase_top"
	EdgeStaircaseBot EdgeType = "staircase_bot"
)

type Direction int

const (
	DirLeft Direction = iota
	DirTopLeft
	DirTop
	DirTopRight
	DirRight
	DirBotRight
	DirBot
	DirBotLeft
)

var Directions = [8]Direction{DirLeft, DirTopLeft, DirTop, DirTopRight, DirRight, DirBotRight, DirBot, DirBotLeft}

func (d Direction) Offset() (int, int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirTopLeft:
		return -1, 1
	case DirTop:
		return 0, 1
	case DirTopRight:
		return 1, 1
	case DirRight:
		return 1, 0
	case DirBotRight:
		return 1, -1
	case DirBot:
		return 0, -1
	case DirBotLeft:
		return -1, -1
	}
	return 0, 0
}

// EdgeMask records, per direction, whether the neighbour counts as "same" for
// the predicate in use.
type EdgeMask [8]bool

// ClassifyEdge maps a neighbour mask to its edge shape. Single sides win over
// outer corners, outer corners over inner corners, inner corners over the rare
// three-side and opposite-side shapes; anything else is EdgeNone.
func ClassifyEdge(m EdgeMask) EdgeType {
	l, t, r, b := m[DirLeft], m[DirTop], m[DirRight], m[DirBot]
	switch {
	case !l && t && r && b:
		return EdgeLeft
	case l && t && !r && b:
		return EdgeRight
	case l && !t && r && b:
		return EdgeTop
	case l && t && r && !b:
		return EdgeBot

	case !l && t && r && !b:
		return EdgeBotLeft
	case !l && !t && r && b:
		return EdgeTopLeft
	case l && !t && !r && b:
		return EdgeTopRight
	case l && t && !r && !b:
		return EdgeBotRight
	}

	if l && t && r && b {
		switch {
		case !m[DirBotLeft]:
			return EdgeBotLeftOnly
		case !m[DirTopLeft]:
			return EdgeTopLeftOnly
		case !m[DirTopRight]:
			return EdgeTopRightOnly
		case !m[DirBotRight]:
			return EdgeBotRightOnly
		}
		return EdgeNone
	}

	switch {
	case l && !t && !r && !b:
		return EdgeRareTRB
	case !l && !t && !r && b:
		return EdgeRareLTR
	case !l && t && !r && !b:
		return EdgeRareRBL
	case !l && !t && r && !b:
		return EdgeRareBLT
	case !l && t && !r && b:
		return EdgeRareTB
	}
	return EdgeNone
}

func (e EdgeType) IsStaircase() bool {
	return e == EdgeStaircase || e == EdgeStaircaseTop || e == EdgeStaircaseBot
}
