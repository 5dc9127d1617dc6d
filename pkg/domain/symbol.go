package domain

// Symbol is a single tape character.
type Symbol = rune

// Blank is the symbol read from every cell that was never written.
// It belongs to every alphabet.
const Blank Symbol = '_'
