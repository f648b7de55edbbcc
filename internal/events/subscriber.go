package events

// Subscriber is the consuming side of the change-event stream.
type Subscriber interface {
	// Subscribe delivers raw envelope payloads for topic on the returned
	// channel. Call the returned cancel function to unsubscribe and close
	// the channel.
	Subscribe(topic string) (<-chan []byte, func(), error)
	Close() error
}
