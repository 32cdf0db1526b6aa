package slot

import "casino_web/internal/model"

// GenerateGrid заполняет поле 3x3 символами, каждый выбирается независимо и равновероятно.
// symbols не должен быть пустым.
func GenerateGrid(symbols []string, intn func(n int) int) model.Grid {
	var grid model.Grid
	for r := 0; r < model.GridSize; r++ {
		for c := 0; c < model.GridSize; c++ {
			grid[r][c] = symbols[intn(len(symbols))]
		}
	}
	return grid
}
