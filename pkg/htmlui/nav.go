package htmlui

// Navigation builds the sidebar with the given entry marked active.
func Navigation(active string) []NavItem {
	entries := []NavItem{
		{Label: "仪表板", URL: "/dashboard"},
		{Label: "员工管理", URL: "/employees"},
		{Label: "部门管理", URL: "/departments"},
		{Label: "客户管理", URL: "/customers"},
		{Label: "房间管理", URL: "/rooms"},
		{Label: "数据分析", URL: "/analytics"},
		{Label: "修改密码", URL: "/change-password"},
		{Label: "退出登录", URL: "/logout"},
	}
	for i := range entries {
		entries[i].Active = entries[i].URL == active
	}
	return entries
}
