package mealplan

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// FoodItem is one entry of a meal slot.
type FoodItem struct {
	Name     string `json:"food_item"`
	Category string `json:"category"`
}

// MealSlot is a named meal (e.g. "Breakfast") and its foods, in the order
// the service listed them.
type MealSlot struct {
	Name  string
	Foods []FoodItem
}

// MealPlan is the plan returned by the meal-plan service.
type MealPlan struct {
	// WaterML is the raw JSON number text of the recommended daily water
	// intake in milliliters, kept exactly as received.
	WaterML string
	// Meals preserves the service's slot order.
	Meals []MealSlot
}

// Slot returns the slot with the given name.
func (p *MealPlan) Slot(name string) (MealSlot, bool) {
	for _, s := range p.Meals {
		if s.Name == name {
			return s, true
		}
	}
	return MealSlot{}, false
}

// SlotNames returns slot names in service order.
func (p *MealPlan) SlotNames() []string {
	names := make([]string, len(p.Meals))
	for i, s := range p.Meals {
		names[i] = s.Name
	}
	return names
}

// ParsePlan decodes a response body. Object iteration follows document
// order so that meal slots keep the order chosen by the service.
func ParsePlan(body []byte) (*MealPlan, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("response is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("response is not a JSON object")
	}

	fields := objectEntries(root)
	water := objectEntries(fields.get("targets")).get("Recommended_Water_ml")
	if !water.Exists() {
		return nil, fmt.Errorf("missing targets.Recommended_Water_ml")
	}
	if water.Type != gjson.Number {
		return nil, fmt.Errorf("targets.Recommended_Water_ml is not a number: %s", water.Raw)
	}

	meals := fields.get("mealPlan")
	if !meals.IsObject() {
		return nil, fmt.Errorf("missing or invalid mealPlan object")
	}

	plan := &MealPlan{WaterML: water.Raw}
	slots := objectEntries(meals)
	for _, name := range slots.keys {
		slot, err := parseSlot(name, slots.values[name])
		if err != nil {
			return nil, err
		}
		plan.Meals = append(plan.Meals, slot)
	}
	return plan, nil
}

// entries is a JSON object reduced to one value per key. A repeated key
// keeps the position of its first occurrence and the value of its last.
type entries struct {
	keys   []string
	values map[string]gjson.Result
}

func objectEntries(obj gjson.Result) entries {
	e := entries{values: make(map[string]gjson.Result)}
	if !obj.IsObject() {
		return e
	}
	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, seen := e.values[name]; !seen {
			e.keys = append(e.keys, name)
		}
		e.values[name] = value
		return true
	})
	return e
}

func (e entries) get(key string) gjson.Result {
	return e.values[key]
}

func parseSlot(name string, value gjson.Result) (MealSlot, error) {
	if !value.IsArray() {
		return MealSlot{}, fmt.Errorf("mealPlan.%s is not an array", name)
	}
	slot := MealSlot{Name: name, Foods: []FoodItem{}}
	var err error
	idx := 0
	value.ForEach(func(_, entry gjson.Result) bool {
		fields := objectEntries(entry)
		food := fields.get("food_item")
		category := fields.get("category")
		if !entry.IsObject() || food.Type != gjson.String || category.Type != gjson.String {
			err = fmt.Errorf("mealPlan.%s[%d] must have string food_item and category", name, idx)
			return false
		}
		slot.Foods = append(slot.Foods, FoodItem{Name: food.String(), Category: category.String()})
		idx++
		return true
	})
	return slot, err
}

// MarshalJSON emits the plan in the service's shape, keeping slot order.
func (p MealPlan) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	water := p.WaterML
	if water == "" {
		water = "0"
	}
	buf.WriteString(`{"targets":{"Recommended_Water_ml":`)
	buf.WriteString(water)
	buf.WriteString(`},"mealPlan":{`)
	for i, slot := range p.Meals {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(slot.Name)
		if err != nil {
			return nil, err
		}
		foods := slot.Foods
		if foods == nil {
			foods = []FoodItem{}
		}
		items, err := json.Marshal(foods)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(items)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}
