// internal/state/state.go
package state

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — экран ebiten-клиента: меню, забег, пауза, итоги
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит активный экран. Оверлеи (пауза, опции, справка)
// хранят предыдущий экран сами и возвращаются в него через SetState.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState вызывает Exit у текущего экрана и Enter у нового. nil допустим
// и означает пустой экран.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	log.Printf("State: %s -> %s", stateName(sm.current), stateName(next))
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// stateName — "*state.PauseState" -> "Pause"
func stateName(s State) string {
	if s == nil {
		return "none"
	}
	name := fmt.Sprintf("%T", s)
	name = name[strings.LastIndex(name, ".")+1:]
	return strings.TrimSuffix(name, "State")
}
