// Package widget contains the interactive building blocks of the touchscreen
// UI: buttons, the swipe gesture recognizer, the page scrollbar and the
// paginated SwipePage container, plus the Frame and ButtonPair used by
// confirmation dialogs.
package widget
