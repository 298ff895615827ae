// Package event defines the records buffered by the input queue.
//
// Every event is a value of one concrete struct per kind. The struct embeds
// a Header (originating window and timestamp) and, for kinds that carry
// data, exactly one payload type:
//
//	Position     WindowMoved, CursorMoved, Scrolled
//	Size         WindowResized, FramebufferResized
//	KeyStroke    KeyPressed, KeyRepeated, KeyReleased
//	ButtonClick  MouseButtonPressed, MouseButtonReleased
//	Char         CharacterInput
//	FileDrop     FilesDropped
//
// Consumers switch on the concrete type:
//
//	switch e := ev.(type) {
//	case event.KeyPressed:
//	    fmt.Println(e.Key, e.Mods)
//	case event.FilesDropped:
//	    for _, p := range e.Paths { ... }
//	}
//
// FilesDropped is the only kind that owns storage. Its paths are deep
// copies made when the event was recorded and are released with Release.
//
// Record is the flat form used for YAML and JSON Lines dumps and for replay
// scenarios.
package event
