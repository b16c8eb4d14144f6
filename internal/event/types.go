// internal/event/types.go
package event

const (
	AntPlaced     EventType = "AntPlaced"     // Муравей размещён
	AntSacrificed EventType = "AntSacrificed" // Муравей принесён в жертву
	TurnResolved  EventType = "TurnResolved"  // Ход завершён
	GameEnded     EventType = "GameEnded"     // Игра окончена (WIN или LOSS)
)
