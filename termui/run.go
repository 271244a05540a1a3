package termui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/schedule"
)

// Run drives session on sched until the player quits or ctx is done. Key
// events are read on a separate goroutine and posted to the scheduler, so
// every session call happens on the goroutine that called Run. The caller
// owns screen and must Fini it after Run returns, which also stops the
// reader.
func Run(ctx context.Context, screen tcell.Screen, session *game.Session, sched *schedule.Scheduler, frame time.Duration) error {
	loopCtx, quit := context.WithCancel(ctx)
	defer quit()

	go readEvents(screen, sched, session, quit)

	render := sched.Every("render", frame, schedule.TaskFunc(func(*schedule.Frame) {
		screen.Clear()
		Draw(screen, session.Snapshot())
		screen.Show()
	}))
	defer sched.Cancel(render)

	sched.Run(loopCtx, frame)

	return ctx.Err()
}

func readEvents(screen tcell.Screen, sched *schedule.Scheduler, session *game.Session, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd := CommandFor(ev)
			switch cmd {
			case CommandNone:
			case CommandQuit:
				quit()
				return
			default:
				sched.Post(func() { Apply(cmd, session) })
			}
		case *tcell.EventResize:
			sched.Post(screen.Sync)
		}
	}
}
