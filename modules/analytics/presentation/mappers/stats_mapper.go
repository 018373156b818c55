package mappers

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yinyiqing/hotel-backoffice/modules/analytics/presentation/viewmodels"
	"github.com/yinyiqing/hotel-backoffice/pkg/crud"
	"github.com/yinyiqing/hotel-backoffice/pkg/format"
	"github.com/yinyiqing/hotel-backoffice/pkg/htmlui"
)

func count(n int) string { return fmt.Sprintf("%d", n) }

func percent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

func SummaryCards(s *viewmodels.DashboardSummary) []htmlui.StatCard {
	return []htmlui.StatCard{
		{Label: "员工总数", Value: count(s.Summary.Employees)},
		{Label: "在职员工", Value: count(s.Summary.ActiveEmployees), Bar: format.Percent(float64(s.Summary.ActiveEmployees), float64(s.Summary.Employees))},
		{Label: "客户总数", Value: count(s.Summary.Customers)},
		{Label: "今日新增客户", Value: count(s.Summary.TodayNewCustomers)},
		{Label: "房间总数", Value: count(s.Summary.Rooms)},
		{Label: "已入住", Value: count(s.Summary.OccupiedRooms), Bar: s.Summary.OccupancyRate},
		{Label: "入住率", Value: percent(s.Summary.OccupancyRate)},
		{Label: "订单总数", Value: count(s.Summary.TotalOrders)},
		{Label: "今日收入", Value: format.Yuan(s.Summary.TodayRevenue)},
		{Label: "今日实收", Value: format.Yuan(s.Summary.TodayPaid)},
	}
}

func WeekTrendTable(trend []viewmodels.TrendPoint) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"日期", "订单数", "收入"}, Empty: "近7天暂无订单"}
	for _, p := range trend {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID: p.Date,
			Cells: []crud.Cell{
				{Text: format.Date(p.Date)},
				{Text: count(p.Orders)},
				{Text: format.Yuan(p.Revenue)},
			},
		})
	}
	return vm
}

func EmployeeCards(s *viewmodels.EmployeeStats) []htmlui.StatCard {
	return []htmlui.StatCard{
		{Label: "员工总数", Value: count(s.Total)},
		{Label: "在职员工", Value: count(s.Active), Bar: format.Percent(float64(s.Active), float64(s.Total))},
		{Label: "离职员工", Value: count(s.Terminated)},
		{Label: "在职率", Value: percent(s.ActiveRate)},
	}
}

func DepartmentTable(s *viewmodels.EmployeeStats) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"部门", "在职人数"}, Empty: "暂无部门数据"}
	for _, d := range s.ByDepartment {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID:    d.DepartmentName,
			Cells: []crud.Cell{{Text: d.DepartmentName}, {Text: count(d.Count)}},
		})
	}
	return vm
}

func CustomerCards(s *viewmodels.CustomerStats) []htmlui.StatCard {
	var spent, orders float64
	for _, c := range s.TopCustomers {
		spent += c.TotalSpent
		orders += float64(c.OrderCount)
	}
	return []htmlui.StatCard{
		{Label: "客户总数", Value: count(s.Total)},
		{Label: "今日新增", Value: count(s.TodayNew)},
		{Label: "活跃客户数", Value: count(len(s.TopCustomers))},
		{Label: "活跃客户人均消费", Value: format.Yuan(format.Ratio(spent, float64(len(s.TopCustomers))))},
		{Label: "活跃客户单均消费", Value: format.Yuan(format.Ratio(spent, orders))},
	}
}

func TopCustomersTable(s *viewmodels.CustomerStats) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"姓名", "订单数", "累计消费", "单均消费"}, Empty: "暂无消费记录"}
	for _, c := range s.TopCustomers {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID: c.Name,
			Cells: []crud.Cell{
				{Text: c.Name, Strong: true},
				{Text: count(c.OrderCount)},
				{Text: format.Yuan(c.TotalSpent)},
				{Text: format.Yuan(format.Ratio(c.TotalSpent, float64(c.OrderCount)))},
			},
		})
	}
	return vm
}

func RoomCards(s *viewmodels.RoomStats) []htmlui.StatCard {
	// Weighted average price over the type breakdown.
	total := decimal.Zero
	rooms := 0
	for _, t := range s.TypeStats {
		total = total.Add(decimal.NewFromFloat(t.AvgPrice).Mul(decimal.NewFromInt(int64(t.Count))))
		rooms += t.Count
	}
	avgPrice := 0.0
	if rooms > 0 {
		avgPrice = total.Div(decimal.NewFromInt(int64(rooms))).InexactFloat64()
	}
	return []htmlui.StatCard{
		{Label: "房间总数", Value: count(s.Total)},
		{Label: "已入住", Value: count(s.Occupied), Bar: s.OccupancyRate},
		{Label: "入住率", Value: percent(s.OccupancyRate)},
		{Label: "平均房价", Value: format.Yuan(avgPrice)},
	}
}

func RoomStatusTable(s *viewmodels.RoomStats) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"状态", "数量", "平均价格"}, Empty: "暂无房间数据"}
	for _, st := range s.StatusStats {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID:    st.Status,
			Cells: []crud.Cell{{Text: st.Status}, {Text: count(st.Count)}, {Text: format.Yuan(st.AvgPrice)}},
		})
	}
	return vm
}

func RoomTypeTable(s *viewmodels.RoomStats) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"房型", "数量", "平均价格", "平均面积"}, Empty: "暂无房间数据"}
	for _, t := range s.TypeStats {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID: t.RoomType,
			Cells: []crud.Cell{
				{Text: t.RoomType},
				{Text: count(t.Count)},
				{Text: format.Yuan(t.AvgPrice)},
				{Text: fmt.Sprintf("%.1f m²", t.AvgArea)},
			},
		})
	}
	return vm
}

func PriceRangeTable(s *viewmodels.RoomStats) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"价格区间", "数量"}, Empty: "暂无房间数据"}
	for _, p := range s.PriceStats {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID:    p.PriceRange,
			Cells: []crud.Cell{{Text: p.PriceRange}, {Text: count(p.Count)}},
		})
	}
	return vm
}

func OrderCards(s *viewmodels.OrderStats) []htmlui.StatCard {
	return []htmlui.StatCard{
		{Label: "订单总数", Value: count(s.Total)},
		{Label: "今日订单", Value: count(s.TodayStats.TodayTotal)},
		{Label: "今日金额", Value: format.Yuan(s.TodayStats.TodayTotalAmount)},
		{Label: "今日实收", Value: format.Yuan(s.TodayStats.TodayPaidAmount)},
		{Label: "今日回款率", Value: percent(s.PaymentRate), Bar: s.PaymentRate},
	}
}

func OrderStatusTable(s *viewmodels.OrderStats) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"订单状态", "数量"}, Empty: "暂无订单数据"}
	for _, st := range s.ByStatus {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID:    st.OrderStatus,
			Cells: []crud.Cell{{Text: st.OrderStatus}, {Text: count(st.Count)}},
		})
	}
	return vm
}

func OrderPaymentTable(s *viewmodels.OrderStats) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"支付状态", "数量"}, Empty: "暂无订单数据"}
	for _, p := range s.ByPayment {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID:    p.PaymentStatus,
			Cells: []crud.Cell{{Text: p.PaymentStatus}, {Text: count(p.Count)}},
		})
	}
	return vm
}

// RevenueCards derives unpaid and average order value, both zero-guarded.
func RevenueCards(r *viewmodels.RevenueReport) []htmlui.StatCard {
	unpaid := decimal.NewFromFloat(r.RevenueStats.TotalRevenue).
		Sub(decimal.NewFromFloat(r.RevenueStats.TotalPaid)).
		InexactFloat64()
	avgOrder := format.Ratio(r.RevenueStats.TotalRevenue, float64(r.RevenueStats.OrderCount))
	return []htmlui.StatCard{
		{Label: "总收入", Value: format.Yuan(r.RevenueStats.TotalRevenue)},
		{Label: "已收款", Value: format.Yuan(r.RevenueStats.TotalPaid), Bar: format.Percent(r.RevenueStats.TotalPaid, r.RevenueStats.TotalRevenue)},
		{Label: "未收款", Value: format.Yuan(unpaid)},
		{Label: "平均订单金额", Value: format.Yuan(avgOrder)},
		{Label: "订单数", Value: count(r.RevenueStats.OrderCount)},
	}
}

func DailyTrendTable(r *viewmodels.RevenueReport) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"日期", "收入", "实收", "订单数"}, Empty: "该时间段暂无订单"}
	for _, d := range r.DailyTrend {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID: d.Date,
			Cells: []crud.Cell{
				{Text: format.Date(d.Date)},
				{Text: format.Yuan(d.DailyRevenue)},
				{Text: format.Yuan(d.DailyPaid)},
				{Text: count(d.DailyOrders)},
			},
		})
	}
	return vm
}

func RoomTypeRevenueTable(r *viewmodels.RevenueReport) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"房型", "收入", "订单数", "单均金额"}, Empty: "该时间段暂无订单"}
	for _, t := range r.RoomTypeStats {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID: t.RoomType,
			Cells: []crud.Cell{
				{Text: t.RoomType},
				{Text: format.Yuan(t.Revenue)},
				{Text: count(t.OrderCount)},
				{Text: format.Yuan(t.AvgOrderValue)},
			},
		})
	}
	return vm
}

func PaymentBreakdownTable(r *viewmodels.RevenueReport) *htmlui.TableVM {
	vm := &htmlui.TableVM{Columns: []string{"支付状态", "金额", "数量"}, Empty: "该时间段暂无订单"}
	for _, p := range r.PaymentStats {
		vm.Rows = append(vm.Rows, htmlui.RowVM{
			ID:    p.PaymentStatus,
			Cells: []crud.Cell{{Text: p.PaymentStatus}, {Text: format.Yuan(p.Amount)}, {Text: count(p.Count)}},
		})
	}
	return vm
}
