package scenario

// officeGrid is the 5×5 office floor plan: 0 = open floor, 1 = wall.
func officeGrid() [][]int {
	return [][]int{
		{0, 0, 0, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 1, 1, 0},
		{1, 0, 0, 0, 0},
	}
}

// officeCosts returns cost 1 everywhere except the slow zones at
// (0,1), (2,3) and (4,2), which cost 2.
func officeCosts() [][]float64 {
	costs := make([][]float64, 5)
	for r := range costs {
		costs[r] = []float64{1, 1, 1, 1, 1}
	}
	costs[0][1] = 2
	costs[2][3] = 2
	costs[4][2] = 2

	return costs
}

// Office returns the standard office run: top-left to bottom-right across
// the floor plan with its slow zones.
func Office() *Scenario {
	return &Scenario{
		Name:  "office",
		Grid:  officeGrid(),
		Costs: officeCosts(),
		Start: []int{0, 0},
		Goal:  []int{4, 4},
	}
}

// OfficeSuite returns the three demo runs over the office floor plan:
//
//	office          (0,0) → (4,4)
//	office-reuse    (0,0) → (4,4) again, must give the same answer
//	office-blocked  (2,0) → (4,4) with an extra wall dropped at (3,1)
func OfficeSuite() []*Scenario {
	reuse := Office()
	reuse.Name = "office-reuse"

	blocked := Office()
	blocked.Name = "office-blocked"
	blocked.Start = []int{2, 0}
	blocked.Obstacles = [][]int{{3, 1}}

	return []*Scenario{Office(), reuse, blocked}
}
