package workshop

type Stage int

const (
	StageInterest Stage = iota
	StageTheme
	StageWriting
	StageExport
)

var stageNames = [...]string{"interest", "theme", "writing", "export"}

func (s Stage) String() string {
	if s < StageInterest || s > StageExport {
		return "unknown"
	}
	return stageNames[s]
}

// previous is the stage reached by Back; Interest has none.
func (s Stage) previous() (Stage, bool) {
	if s == StageInterest {
		return s, false
	}
	return s - 1, true
}
