package dnd5e

import "github.com/KirkDiggler/rpg-cards/internal/vocab"

// MagicItem is a magic item scraped from the rules site
type MagicItem struct {
	Reference Reference

	Title    string
	Language vocab.Language

	Kind vocab.MagicItemKind
	// TypeText is the category line before the rarity, e.g. "Arme (épée longue)"
	TypeText string
	Rarity   vocab.MagicItemRarity
	// RarityText is the rarity as printed, without the attunement parenthetical
	RarityText         string
	RequiresAttunement bool

	Paragraphs    []string
	ImageURL      string
	RechargeCount int
}
