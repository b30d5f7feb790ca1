package terminal

import (
	"ThePong/core"
	"github.com/gdamore/tcell"
	"unicode"
)

const inputBuffer = 64

func (t *Terminal) initUserInput() chan tcell.Event {
	//初始化channel，去接另一個goroutine丟回來的資料
	inputChan := make(chan tcell.Event, inputBuffer)

	//建立一個goroutine去監聽鍵盤的事件
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case inputChan <- ev:
			case <-t.quit:
				return
			}
		}
	}()

	return inputChan
}

// readInput drains everything polled since the last frame. Terminals report no key
// releases, so a key counts as held for the frame in which it was pressed or repeated.
func (t *Terminal) readInput(inputChan chan tcell.Event) ([]core.Event, core.KeySet) {
	var events []core.Event
	var held core.KeySet

	for {
		select {
		case ev := <-inputChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()

			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					events = append(events, core.Quit())
					continue
				}
				if key, ok := translateKey(ev); ok {
					events = append(events, core.KeyDown(key))
					held = held.With(key)
				}
			}
		default:
			return events, held
		}
	}
}

func translateKey(ev *tcell.EventKey) (core.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return core.KeyEscape, true

	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return core.KeyUp1, true
		case 's':
			return core.KeyDown1, true
		case 'i':
			return core.KeyUp2, true
		case 'k':
			return core.KeyDown2, true
		case ' ':
			return core.KeySpace, true
		}
	}
	return 0, false
}
