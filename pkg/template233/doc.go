// Package template233 通过交互问答生成测试数据模板文件。
//
// # 功能特性
//
//   - 全局默认设置（输出格式、语言、记录数、排除的命名空间）
//   - 按对象覆盖设置（记录数、语言、排除字段、包含字段、其余字段）
//   - 包含字段的简写语法，支持依赖选择列表（dp- 前缀）
//   - 排除与包含冲突检测、无可生成字段检测
//   - 基于结构目录（JSON、TSV、Excel）的事后校验和监听
//
// # 快速开始
//
//	p := prompt.NewLinePrompter(os.Stdin, os.Stdout)
//	printer := prompt.NewPrinter(os.Stdout, true)
//	result, err := template233.Init(ctx, p, printer, template233.InitOptions{
//	    DataDir: "data_gen",
//	})
//
// 测试或脚本中可以用 prompt.NewScript 预设回答。
//
// # 模板格式
//
//	{
//	  "templateFileName": "lead_data_template.json",
//	  "namespaceToExclude": [],
//	  "outputFormat": ["csv"],
//	  "language": "en",
//	  "count": 1,
//	  "sObjects": [
//	    {"account": {}},
//	    {"lead": {"count": 5, "fieldsToConsider": {"dp-country": ["India"], "dp-state": ["Goa"]}}}
//	  ]
//	}
//
// # 日志集成
//
// 支持 logr 接口：
//
//	template233.SetLogger(yourLogger)
package template233
