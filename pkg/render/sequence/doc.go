// Package sequence draws sequence diagrams.
//
// Participants get a header box and a lifeline in first-appearance order.
// Each message then takes three rows below the headers: a blank spacing
// row, the label centered between the two lifelines, and the arrow. Messages
// are never reordered, so reading the output top to bottom replays the
// input.
//
//	┌──────────┐    ┌──────────┐
//	│  Alice   │    │   Bob    │
//	└─────┬────┘    └─────┬────┘
//	      │               │
//	      │      Hi       │
//	      ├──────────────►│
//
// Dashed messages use the dotted stroke of the glyph set. A message to the
// sender itself is drawn as a small loop right of its lifeline.
package sequence
