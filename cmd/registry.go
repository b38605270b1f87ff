package cmd

import (
	"json-cooker/core/cooker"
	"json-cooker/feature/genshin"
	"json-cooker/feature/hsr"
	"json-cooker/feature/zzz"
)

// allTitles returns every known title in cooking order.
func allTitles() []cooker.Title {
	return []cooker.Title{genshin.Title(), hsr.Title(), zzz.Title()}
}

// selectedTitles keeps the titles whose flag is set, in cooking order.
func selectedTitles(genshinOn, hsrOn, zzzOn bool) []cooker.Title {
	on := map[string]bool{
		genshin.Name: genshinOn,
		hsr.Name:     hsrOn,
		zzz.Name:     zzzOn,
	}
	var titles []cooker.Title
	for _, t := range allTitles() {
		if on[t.Name] {
			titles = append(titles, t)
		}
	}
	return titles
}
