package viewmodels

// EmployeeStatistics mirrors the /api/employee/statistics payload.
type EmployeeStatistics struct {
	Total        int               `json:"total"`
	Active       int               `json:"active"`
	Terminated   int               `json:"terminated"`
	ActiveRate   float64           `json:"active_rate"`
	ByDepartment []DepartmentCount `json:"by_department"`
}

type DepartmentCount struct {
	DepartmentName string `json:"department_name"`
	Count          int    `json:"count"`
}
