package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDepartmentList_RendersRows(t *testing.T) {
	router, _ := newEmployeesRouter(t)

	rec := get(router, "/departments")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "前台部")
	require.Contains(t, rec.Body.String(), "添加部门")
}

func TestDepartmentEditForm_OpensFromCachedRecord(t *testing.T) {
	router, _ := newEmployeesRouter(t)

	get(router, "/departments")
	rec := get(router, "/departments/D1/form")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body := get(router, "/departments").Body.String()
	require.Contains(t, body, `<div class="overlay">`)
	require.Contains(t, body, "编辑部门")
	// Department ids are immutable once assigned.
	require.Contains(t, body, "readonly")
	require.Contains(t, body, "接待与预订")
}

func TestDepartmentEditForm_UnknownDepartment(t *testing.T) {
	router, _ := newEmployeesRouter(t)

	rec := get(router, "/departments/D9/form")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body := get(router, "/departments").Body.String()
	require.Contains(t, body, "部门不存在")
	require.NotContains(t, body, `<div class="overlay">`)
}

func TestDepartmentSave_UpdatesWithoutSingleGet(t *testing.T) {
	router, fake := newEmployeesRouter(t)

	get(router, "/departments")
	get(router, "/departments/D1/form")

	rec := post(router, "/departments", url.Values{
		"department_id":   {"D1"},
		"department_name": {"前台接待部"},
		"description":     {"接待、预订与退房"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Contains(t, fake.updates, "D1")
	require.Equal(t, "前台接待部", fake.updates["D1"]["department_name"])
}
