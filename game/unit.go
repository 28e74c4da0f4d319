package game

import "fmt"

// Player identifies one of the two sides
type Player int

const (
	Attacker Player = iota
	Defender
)

// Next returns the opposing side
func (p Player) Next() Player {
	if p == Attacker {
		return Defender
	}
	return Attacker
}

func (p Player) String() string {
	if p == Attacker {
		return "Attacker"
	}
	return "Defender"
}

// UnitType enumerates the five unit archetypes
type UnitType int

const (
	AI UnitType = iota
	Tech
	Virus
	Program
	Firewall
)

func (t UnitType) String() string {
	switch t {
	case AI:
		return "AI"
	case Tech:
		return "Tech"
	case Virus:
		return "Virus"
	case Program:
		return "Program"
	default:
		return "Firewall"
	}
}

// MaxHealth is the health every unit is deployed with and can never exceed
const MaxHealth = 9

// damageTable[actor][target] is the base damage one attack deals.
// Viruses shred AIs, techs shred viruses, firewalls absorb almost anything
var damageTable = [5][5]int{
	AI:       {3, 3, 3, 3, 1},
	Tech:     {1, 1, 6, 1, 1},
	Virus:    {9, 6, 1, 6, 1},
	Program:  {3, 3, 3, 3, 1},
	Firewall: {1, 1, 1, 1, 1},
}

// repairTable[actor][target] is the base health one repair restores.
// Only techs and AIs can repair, and only specific partners
var repairTable = [5][5]int{
	AI:       {0, 1, 1, 0, 0},
	Tech:     {3, 0, 0, 3, 3},
	Virus:    {0, 0, 0, 0, 0},
	Program:  {0, 0, 0, 0, 0},
	Firewall: {0, 0, 0, 0, 0},
}

// Unit is a single piece on the board
type Unit struct {
	Player Player
	Type   UnitType
	Health int
}

// NewUnit deploys a unit at full health
func NewUnit(p Player, t UnitType) *Unit {
	return &Unit{Player: p, Type: t, Health: MaxHealth}
}

// IsAlive reports whether the unit is still on the board
func (u *Unit) IsAlive() bool {
	return u.Health > 0
}

// ModHealth adjusts health by delta, clamped to [0, MaxHealth]
func (u *Unit) ModHealth(delta int) {
	u.Health += delta
	if u.Health < 0 {
		u.Health = 0
	} else if u.Health > MaxHealth {
		u.Health = MaxHealth
	}
}

// DamageAmount is the damage u deals to target in one attack, capped so
// the target cannot drop below zero health
func (u *Unit) DamageAmount(target *Unit) int {
	amount := damageTable[u.Type][target.Type]
	if target.Health-amount < 0 {
		return target.Health
	}
	return amount
}

// RepairAmount is the health u restores on target in one repair, capped
// so the target cannot exceed full health
func (u *Unit) RepairAmount(target *Unit) int {
	amount := repairTable[u.Type][target.Type]
	if target.Health+amount > MaxHealth {
		return MaxHealth - target.Health
	}
	return amount
}

// String renders the unit as owner letter, type letter, health digit,
// e.g. "aV9" for an attacker virus at full health
func (u *Unit) String() string {
	owner := byte('a')
	if u.Player == Defender {
		owner = 'd'
	}
	return fmt.Sprintf("%c%c%d", owner, u.Type.String()[0], u.Health)
}
