package domain

const (
	CollectionPick = "picks"
)
