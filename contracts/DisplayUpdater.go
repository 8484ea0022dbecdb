package contracts

// DisplayUpdater receives the final text to show for a cell after every
// mutation, successful or failed. Fire and forget from the store's
// point of view.
type DisplayUpdater func(row int, col int, text string)
