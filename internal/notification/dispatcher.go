package notification

import "github.com/rs/zerolog/log"

type Event struct {
	UserID   uint
	Type     string
	Title    string
	Message  string
	Entity   string
	EntityID *uint
}

type Dispatcher struct {
	writer *Writer
	queue  chan Event
}

func NewDispatcher(writer *Writer) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Write(
			ev.UserID,
			ev.Type,
			ev.Title,
			ev.Message,
			ev.Entity,
			ev.EntityID,
		); err != nil {
			log.Error().Err(err).Uint("user_id", ev.UserID).Msg("notification write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos a notificação (nunca quebrar API)
		log.Warn().Uint("user_id", ev.UserID).Msg("notification queue full, dropping event")
	}
}
