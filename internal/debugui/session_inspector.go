package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/internal/loop"
	"github.com/plus3/tetra/tetris"
)

// StackSurvey summarizes the settled cells of a board.
type StackSurvey struct {
	// Heights holds, per column, the number of rows from the floor up to
	// and including the highest occupied cell.
	Heights [tetris.Cols]int
	// Holes counts empty cells with an occupied cell somewhere above them.
	Holes     int
	MaxHeight int
	Cells     int
}

func Survey(board *tetris.Board) StackSurvey {
	var s StackSurvey
	for col := range tetris.Cols {
		covered := false
		for row := range tetris.Rows {
			if board[row][col] != tetris.None {
				if !covered {
					s.Heights[col] = tetris.Rows - row
					covered = true
				}
				s.Cells++
				continue
			}
			if covered {
				s.Holes++
			}
		}
		s.MaxHeight = max(s.MaxHeight, s.Heights[col])
	}
	return s
}

// SessionInspector shows live session state and offers a few controls:
// changing the level, pausing the tick, and single-stepping frames.
type SessionInspector struct {
	Scheduler *loop.Scheduler
	Tick      *loop.TickSystem
}

func (si *SessionInspector) Render() {
	session := si.Scheduler.Session()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if session.GameOver() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	}
	imgui.Text(fmt.Sprintf("Score: %d", session.Score()))
	imgui.Text(fmt.Sprintf("Lines: %d  Pieces: %d", session.Lines(), session.Locked()))
	imgui.Text(fmt.Sprintf("Frames: %d", session.Frames()))

	level := int32(session.Level())
	imgui.SetNextItemWidth(120)
	if imgui.InputInt("Level", &level) {
		session.SetLevel(int(level))
	}
	imgui.Text(fmt.Sprintf("Gravity: %.2f frames/row", tetris.GravityFramesPerRow(session.Level())))

	imgui.Separator()
	active := session.Active()
	imgui.Text(fmt.Sprintf("Active: %s %s at (%d, %d)", active.Kind, active.Rotation, active.Origin.Row, active.Origin.Col))
	board := session.Board()
	grounded := active.Grounded(&board)
	imgui.Text(fmt.Sprintf("Grounded: %t", grounded))
	lock := session.LockCounter()
	progress := float32(lock) / float32(tetris.LockDelayFrames)
	imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("lock %d/%d", lock, tetris.LockDelayFrames))
	imgui.Text(fmt.Sprintf("Held: %s  Can hold: %t", session.Held(), session.CanHold()))
	imgui.Text(fmt.Sprintf("Next: %v", session.Queue()))

	if si.Tick != nil {
		imgui.Separator()
		imgui.Checkbox("Paused", &si.Tick.Paused)
		imgui.SameLine()
		if imgui.Button("Step") {
			session.FrameAdvance()
		}
		imgui.Text(fmt.Sprintf("Dropped frames: %d", si.Tick.Dropped()))
	}

	if imgui.TreeNodeStr("Stack") {
		survey := Survey(&board)
		imgui.Text(fmt.Sprintf("Cells: %d  Holes: %d  Max height: %d", survey.Cells, survey.Holes, survey.MaxHeight))
		imgui.Text(fmt.Sprintf("Heights: %v", survey.Heights))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Pieces Dealt") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("DealtTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, kind := range tetris.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", session.Dealt(kind)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
