package model

// Member is a group member, identified by exact display name.
// There is no separate ID; renaming is unsupported because every
// historical expense references members by name.
type Member string
