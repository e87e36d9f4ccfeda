package fen_test

import (
	"fmt"

	"chess-fen/fen"
)

func ExampleGenerate() {
	pieces := fen.Placement{
		{Row: 0, Col: 4}: 'k', // Black King at e8
		{Row: 7, Col: 4}: 'K', // White King at e1
		{Row: 1, Col: 4}: 'p', // Black Pawn at e7
		{Row: 6, Col: 3}: 'P', // White Pawn at d2
	}
	s, err := fen.Generate(pieces)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: 4k3/4p3/8/8/8/8/3P4/4K3 w KQkq - 0 1
}

func ExampleEncode() {
	opts := fen.DefaultOptions()
	opts.ActiveColor = "b"
	opts.CastlingRights = "-"
	opts.FullmoveNumber = 40
	s, _ := fen.Encode(fen.Placement{{Row: 0, Col: 7}: 'k', {Row: 2, Col: 5}: 'Q', {Row: 2, Col: 6}: 'K'}, opts)
	fmt.Println(s)
	// Output: 7k/8/5QK1/8/8/8/8/8 b - - 0 40
}
