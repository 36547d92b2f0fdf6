package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Phases in canonical execution order.
const (
	PhaseDepartments       = "departments"
	PhaseFinanceCategories = "finance_categories"
	PhaseItemCategories    = "item_categories"
)

var allPhases = []string{PhaseDepartments, PhaseFinanceCategories, PhaseItemCategories}

// AllPhases returns the phase names in execution order.
func AllPhases() []string {
	return append([]string(nil), allPhases...)
}

func defaultDepartments() []string {
	return []string{
		"爱特工作室本部", "程序部", "Web部", "游戏部", "IOS部",
		"APP部", "UI部", "智能应用部", "OpenHarmony部", "FOSS部",
	}
}

func defaultFinanceCategories() []string {
	return []string{
		"办公用品", "设备采购", "软件授权", "差旅费", "会议费", "宣传费用", "日用品费用",
		"维护费用", "其他支出", "项目收入", "服务收入", "资金交接", "其他收入",
	}
}

func defaultItemCategories() []domain.SeedRow {
	return []domain.SeedRow{
		{Name: "电子设备", Description: "包括电脑、手机、平板等电子产品"},
		{Name: "办公用品", Description: "办公桌椅、文具、打印机等办公设备"},
		{Name: "实验器材", Description: "实验室设备、仪器、工具等"},
		{Name: "家具", Description: "桌子、椅子、柜子等家具用品"},
		{Name: "图书资料", Description: "书籍、文档、资料等"},
		{Name: "工具设备", Description: "维修工具、测量仪器等"},
		{Name: "音响设备", Description: "音响、麦克风、投影仪等音视频设备"},
		{Name: "运动器材", Description: "体育用品、健身器材等"},
		{Name: "清洁用品", Description: "清洁工具、清洁剂等"},
		{Name: "网络设备", Description: "路由器、交换机、网线等网络相关设备"},
		{Name: "安全设备", Description: "监控摄像头、门禁系统、报警器等安全设备"},
		{Name: "医疗用品", Description: "急救包、体温计、血压计等医疗相关用品"},
		{Name: "厨房用具", Description: "微波炉、咖啡机、餐具等厨房设备"},
		{Name: "照明设备", Description: "台灯、吊灯、应急灯等照明用品"},
		{Name: "存储设备", Description: "硬盘、U盘、移动硬盘等存储设备"},
		{Name: "车辆工具", Description: "汽车配件、维修工具、车载设备等"},
		{Name: "服装用品", Description: "工作服、防护服、鞋帽等服装类物品"},
		{Name: "教学用品", Description: "黑板、白板、教学模型等教学设备"},
		{Name: "通讯设备", Description: "对讲机、电话、传真机等通讯设备"},
		{Name: "空调制冷", Description: "空调、风扇、加湿器等温度调节设备"},
		{Name: "消防设备", Description: "灭火器、烟雾报警器、消防栓等消防用品"},
		{Name: "软件许可", Description: "软件授权、许可证、数字资产等"},
		{Name: "包装材料", Description: "纸箱、胶带、包装袋等包装用品"},
		{Name: "园艺用品", Description: "花盆、园艺工具、肥料等园艺相关用品"},
		{Name: "其他", Description: "其他未分类的物品"},
	}
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Updated  int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline runs the seeding phases.
type Pipeline struct {
	log     *slog.Logger
	repo    SeedRepo
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo SeedRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repo:    repo,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run; an unknown name is an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		table, rows, sync := p.plan(phase)
		result := p.runPhase(ctx, table, rows, sync)
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("updated", result.Updated),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)), slog.Bool("dry_run", p.cfg.DryRun))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}
	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		ph = strings.TrimSpace(ph)
		known := false
		for _, a := range allPhases {
			if a == ph {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown phase %q (known: %s)", ph, strings.Join(allPhases, ", "))
		}
		filter[ph] = true
	}
	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
		}
	}
	return out, nil
}

// plan resolves the rows of a phase. Item categories carry descriptions
// that are kept in sync; the other tables are only filled in.
func (p *Pipeline) plan(phase string) (domain.SeedTable, []domain.SeedRow, bool) {
	switch phase {
	case PhaseDepartments:
		return domain.SeedDepartments, namesToRows(p.cfg.Departments, defaultDepartments()), false
	case PhaseFinanceCategories:
		return domain.SeedFinanceCategories, namesToRows(p.cfg.FinanceCategories, defaultFinanceCategories()), false
	default:
		rows := p.cfg.ItemCategories
		if len(rows) == 0 {
			rows = defaultItemCategories()
		}
		return domain.SeedItemCategories, dedupe(rows), true
	}
}

func (p *Pipeline) runPhase(ctx context.Context, table domain.SeedTable, rows []domain.SeedRow, sync bool) PhaseResult {
	if p.cfg.DryRun {
		for _, r := range rows {
			p.log.Info("would seed", slog.String("table", string(table)), slog.String("name", r.Name))
		}
		return PhaseResult{Skipped: len(rows)}
	}

	count, err := p.repo.Upsert(ctx, table, rows, sync)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("seed %s: %w", table, err)}
	}
	return PhaseResult{Inserted: count.Inserted, Updated: count.Updated, Skipped: count.Skipped}
}

func namesToRows(names, fallback []string) []domain.SeedRow {
	if len(names) == 0 {
		names = fallback
	}
	rows := make([]domain.SeedRow, 0, len(names))
	for _, n := range names {
		rows = append(rows, domain.SeedRow{Name: n})
	}
	return dedupe(rows)
}

// dedupe trims names and drops blanks and repeats, keeping the first.
func dedupe(rows []domain.SeedRow) []domain.SeedRow {
	seen := make(map[string]bool, len(rows))
	out := make([]domain.SeedRow, 0, len(rows))
	for _, r := range rows {
		r.Name = strings.TrimSpace(r.Name)
		if r.Name == "" || seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		out = append(out, r)
	}
	return out
}
