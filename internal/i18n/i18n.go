// Package i18n holds the English and Korean UI strings. Lookups fall
// back to English when a key has no Korean entry.
package i18n

import "fmt"

// Lang selects the output language.
type Lang string

const (
	English Lang = "en"
	Korean  Lang = "ko"
)

// Parse validates a language flag value.
func Parse(s string) (Lang, error) {
	switch s {
	case "", "en":
		return English, nil
	case "ko":
		return Korean, nil
	default:
		return English, fmt.Errorf("unsupported language %q (want en or ko)", s)
	}
}

type entry struct {
	en string
	ko string
}

var catalog = map[string]entry{
	// Dashboard.
	"dashboard.totalPrograms":       {"Total Programs", "전체 프로그램"},
	"dashboard.activeProjects":      {"Active Projects", "활성 프로젝트"},
	"dashboard.resourceUtilization": {"Resource Utilization", "리소스 활용률"},
	"dashboard.budgetConsumed":      {"Budget Consumed", "예산 소비"},
	"dashboard.programStatus":       {"Program Status", "프로그램 상태"},
	"dashboard.budgetTrend":         {"Budget Trend (K)", "예산 추이 (K)"},

	// Programs.
	"programs.title":    {"Programs", "프로그램"},
	"programs.subtitle": {"Manage your programs", "프로그램을 관리합니다"},
	"programs.budget":   {"Budget", "예산"},
	"programs.spent":    {"Spent", "지출"},
	"programs.progress": {"Progress", "진행률"},
	"programs.projects": {"projects", "프로젝트"},
	"programs.none":     {"No programs found", "프로그램을 찾을 수 없습니다"},
	"programs.start":    {"Start", "시작일"},
	"programs.end":      {"End", "종료일"},
	"programs.owner":    {"Owner", "담당자"},

	// Resources.
	"resources.title":              {"Resource Allocation", "리소스 할당"},
	"resources.subtitle":           {"Manage your team and project assignments", "팀 및 프로젝트 배포를 관리합니다"},
	"resources.members":            {"Team Members", "팀원"},
	"resources.available":          {"Available", "가용"},
	"resources.allocated":          {"Allocated", "할당됨"},
	"resources.overallocated":      {"Over-allocated", "과할당"},
	"resources.skills":             {"Skills", "기술"},
	"resources.capacity":           {"Capacity", "용량"},
	"resources.allocation":         {"Allocation", "할당"},
	"resources.noAllocations":      {"No allocations yet", "할당 내역 없음"},
	"resources.totalResources":     {"Total Resources", "전체 리소스"},
	"resources.empty":              {"No resources found", "리소스를 찾을 수 없습니다"},
	"resources.name":               {"Name", "이름"},
	"resources.role":               {"Role", "역할"},
	"resources.department":         {"Department", "부서"},
	"resources.project":            {"Project", "프로젝트"},
	"resources.period":             {"Period", "기간"},
	"resources.averageUtilization": {"Average Utilization", "평균 활용률"},

	// Schedule.
	"schedule.title":      {"Schedule & Timeline", "일정 및 타임라인"},
	"schedule.subtitle":   {"View your project timeline and milestones", "프로젝트 타임라인과 마일스톤을 확인하세요"},
	"schedule.today":      {"Today", "오늘"},
	"schedule.day":        {"Day", "일"},
	"schedule.week":       {"Week", "주"},
	"schedule.month":      {"Month", "월"},
	"schedule.projects":   {"Projects", "프로젝트"},
	"schedule.tasks":      {"Tasks", "태스크"},
	"schedule.milestones": {"Milestones", "마일스톤"},
	"schedule.progress":   {"Progress", "진행률"},
	"schedule.noData":     {"No scheduled items found", "예약된 항목이 없습니다"},

	// Alerts. The *.desc entries are fmt templates.
	"alerts.title":              {"Alerts", "알림"},
	"alerts.none":               {"No alerts", "알림 없음"},
	"alerts.milestone":          {"Upcoming Milestone", "다가오는 마일스톤"},
	"alerts.milestone.desc":     {"%q - %d days remaining (%s)", "%q - %d일 남음 (%s)"},
	"alerts.resource.over":      {"Over-allocated Resource", "리소스 과할당"},
	"alerts.resource.over.desc": {"%s: %.0f%% allocated (%.0f%% over)", "%s: %.0f%% 할당됨 (초과 %.0f%%)"},
	"alerts.resource.warn":      {"Resource Allocation Warning", "리소스 할당 주의"},
	"alerts.resource.warn.desc": {"%s: %.0f%% allocated (%.0f%% remaining)", "%s: %.0f%% 할당됨 (여유 %.0f%% 남음)"},
	"alerts.budget.over":        {"Budget Exceeded", "예산 초과"},
	"alerts.budget.over.desc":   {"%s: %.1f%% used (%.1f%% over)", "%s: %.1f%% 사용 (초과 %.1f%%)"},
	"alerts.budget.warn":        {"Budget Warning", "예산 주의"},
	"alerts.budget.warn.desc":   {"%s: %.1f%% used (%.1f%% remaining)", "%s: %.1f%% 사용 (%.1f%% 남음)"},
	"alerts.progress":           {"Low Progress Alert", "진행률 저조"},
	"alerts.progress.desc":      {"%s: %.0f%% complete (expected %.0f%%)", "%s: %.0f%% 완료 (예상 %.0f%%)"},

	// Chat.
	"chat.thinking":        {"Thinking...", "생각 중..."},
	"chat.videoGenerating": {"Generating video... this can take a few minutes.", "동영상 생성 중... 몇 분 정도 걸릴 수 있습니다."},
	"chat.videoFailed":     {"Failed to generate video.", "동영상 생성에 실패했습니다."},
	"chat.videoBusy":       {"A video generation is already in progress.", "이미 동영상 생성이 진행 중입니다."},
	"chat.keyError":        {"API Key error. Please re-select your key.", "API 키 오류입니다. 키를 다시 선택해 주세요."},
	"chat.keyMissing":      {"API key is not configured. Set PAMOUT_API_KEY to enable the assistant.", "API 키가 설정되지 않았습니다. PAMOUT_API_KEY를 설정해 주세요."},
}

// T returns the string for key in lang. Unknown keys come back as the
// key itself so a missing entry is visible instead of silent.
func T(lang Lang, key string) string {
	e, ok := catalog[key]
	if !ok {
		return key
	}
	if lang == Korean && e.ko != "" {
		return e.ko
	}
	return e.en
}

// Tf formats a template entry from the catalog.
func Tf(lang Lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}
