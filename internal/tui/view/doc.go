// Package view provides the rendering components of the dietplanner TUI.
//
// # Main Types
//
//   - [PlanView]: renders a generated meal plan, styled or plain
//   - [HelpBarView]: renders the key hints under the form
//
// # Plan layout
//
//	Your Personalized Meal Plan
//	Recommended Water Intake: 2500 ml
//
//	Breakfast
//	  • Oats (Grain)
//
//	Lunch
//
// Slots appear in the order the service returned them. Empty slots keep
// their heading. The water value is printed exactly as received.
package view
