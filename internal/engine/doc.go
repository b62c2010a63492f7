// Package engine drives the morph animation one frame at a time.
//
// Each frame, in order:
//
//  1. clear the frame buffer to the background color
//  2. tick the morph state
//  3. compute the frame's rotation
//  4. project every vertex pair and write the surviving pixels
//  5. hand the buffer to the [Surface]
//  6. wait on the [Clock] for the next frame
//
// [Engine.Frame] performs steps 1–4 and suits hosts that own their own loop
// (the terminal UI, tests). [Engine.Run] performs all six.
//
// # Thread Safety
//
// An Engine is NOT safe for concurrent use. Surfaces only see the buffer
// inside Present and must not retain it.
package engine
