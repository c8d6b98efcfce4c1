// internal/event/types.go
package event

const (
	MonsterSpawned EventType = "MonsterSpawned" // Монстр вышел на поле
	MonsterKilled  EventType = "MonsterKilled"  // Анимация смерти закончилась, мана начислена
	MonsterLeaked  EventType = "MonsterLeaked"  // Монстр дошёл до дома
	WaveStarted    EventType = "WaveStarted"
	TowerBuilt     EventType = "TowerBuilt"
	TowerUpgraded  EventType = "TowerUpgraded"
	TowerTierUp    EventType = "TowerTierUp"
	ManaBoosted    EventType = "ManaBoosted"
	GameWon        EventType = "GameWon"
	GameLost       EventType = "GameLost"
)

// AllTypes: все типы событий симуляции
var AllTypes = []EventType{
	MonsterSpawned, MonsterKilled, MonsterLeaked, WaveStarted,
	TowerBuilt, TowerUpgraded, TowerTierUp, ManaBoosted, GameWon, GameLost,
}

// MonsterData: данные событий о монстрах
type MonsterData struct {
	ID   uint64
	Kind string
	HP   float64
	Mana float64 // начисленная или потерянная мана
}

// WaveData: данные о начавшейся волне
type WaveData struct {
	Number   int
	Total    int
	Monsters int
}

// TowerData: данные о постройке или улучшении башни
type TowerData struct {
	ID    uint64
	X, Y  int
	Track string
	Tier  int
	Cost  float64
}

// ManaData: состояние пула после усиления
type ManaData struct {
	Cap      float64
	PerSec   float64
	NextCost float64
}

// ResultData: итог партии
type ResultData struct {
	Frame uint64
	Waves int
}
