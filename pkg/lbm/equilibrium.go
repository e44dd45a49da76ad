package lbm

// Equilibrium returns the D2Q9 Maxwell-Boltzmann equilibrium
//
//	f_i = w_i ρ (1 + 3 c_i·u + 4.5 (c_i·u)² - 1.5 |u|²)
//
// The expansion is only accurate for |u| well below the lattice sound speed
// 1/√3; nothing here enforces that.
func Equilibrium(rho, ux, uy float64) (feq [Q]float64) {
	usq := 1.5 * (ux*ux + uy*uy)
	for i := range feq {
		cu := float64(CX[i])*ux + float64(CY[i])*uy
		feq[i] = Weights[i] * rho * (1 + 3*cu + 4.5*cu*cu - usq)
	}
	return feq
}

// Moments returns the zeroth and first velocity moments of pop.
func Moments(pop [Q]float64) (rho, ux, uy float64) {
	var mx, my float64
	for i, p := range pop {
		rho += p
		mx += p * float64(CX[i])
		my += p * float64(CY[i])
	}
	return rho, mx / rho, my / rho
}

// Relax performs one BGK relaxation of pop towards the equilibrium of
// (rho, ux, uy) at rate omega.
func Relax(pop [Q]float64, rho, ux, uy, omega float64) [Q]float64 {
	feq := Equilibrium(rho, ux, uy)
	for i := range pop {
		pop[i] += omega * (feq[i] - pop[i])
	}
	return pop
}
