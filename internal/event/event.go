// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события. Tick — номер тика симуляции, когда оно произошло.
type Event struct {
	Type EventType
	Tick int
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий. Слушатели вызываются в порядке
// подписки; сначала подписанные на конкретный тип, затем подписанные на всё.
type Dispatcher struct {
	listeners map[EventType][]Listener
	wildcard  []Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на одно или несколько событий
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// SubscribeAll — подписка на все события
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.wildcard = append(d.wildcard, listener)
}

// Unsubscribe — отписка слушателя от всех событий
func (d *Dispatcher) Unsubscribe(listener Listener) {
	for t, listeners := range d.listeners {
		d.listeners[t] = without(listeners, listener)
	}
	d.wildcard = without(d.wildcard, listener)
}

func without(listeners []Listener, listener Listener) []Listener {
	kept := listeners[:0]
	for _, l := range listeners {
		if l != listener {
			kept = append(kept, l)
		}
	}
	return kept
}

// Dispatch — отправка события всем подписчикам. Nil-диспетчер молча ничего не делает.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.wildcard {
		listener.OnEvent(event)
	}
}
