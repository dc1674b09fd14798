// Package seed holds the demo clinic dataset the collections fall back to on
// first run or when a durable slot is unreadable. Each function returns a
// fresh slice so callers can mutate their copy freely.
package seed

import "github.com/dentaltrack/backend/internal/domain/entities"

// Users returns the seeded clinic staff
func Users() []entities.User {
	return []entities.User{
		{ID: "1", Name: "Dr. Carlos Silva", Role: entities.RoleAdmin, Email: "carlos@dentaltrack.com", Specialty: "Implantodontia"},
		{ID: "2", Name: "Dra. Marina Santos", Role: entities.RoleDentist, Email: "marina@dentaltrack.com", Specialty: "Ortodontia"},
		{ID: "3", Name: "Dr. Roberto Lima", Role: entities.RoleDentist, Email: "roberto@dentaltrack.com", Specialty: "Endodontia"},
		{ID: "4", Name: "Ana Paula Costa", Role: entities.RoleReception, Email: "ana@dentaltrack.com"},
		{ID: "5", Name: "Juliana Mendes", Role: entities.RoleReception, Email: "juliana@dentaltrack.com"},
	}
}

// Patients returns the seeded patient registry
func Patients() []entities.Patient {
	return []entities.Patient{
		{
			ID: "1", Name: "João Pedro Oliveira", CPF: "123.456.789-00",
			Phone: "(11) 99999-1234", Email: "joao@email.com", BirthDate: "1985-03-15",
			HealthInsuranceID: "UNIMED-12345", HealthInsuranceName: "Unimed",
			Address: "Rua das Flores, 123 - São Paulo, SP", CreatedAt: "2024-01-10",
		},
		{
			ID: "2", Name: "Maria Fernanda Silva", CPF: "234.567.890-11",
			Phone: "(11) 98888-5678", Email: "maria@email.com", BirthDate: "1990-07-22",
			HealthInsuranceName: "Particular",
			Address:             "Av. Paulista, 1000 - São Paulo, SP", CreatedAt: "2024-02-15",
		},
		{
			ID: "3", Name: "Carlos Eduardo Souza", CPF: "345.678.901-22",
			Phone: "(11) 97777-9012", Email: "carlos@email.com", BirthDate: "1978-11-08",
			HealthInsuranceID: "AMIL-67890", HealthInsuranceName: "Amil",
			Address: "Rua Augusta, 500 - São Paulo, SP", CreatedAt: "2024-03-01",
		},
		{
			ID: "4", Name: "Ana Beatriz Costa", CPF: "456.789.012-33",
			Phone: "(11) 96666-3456", Email: "ana.b@email.com", BirthDate: "1995-01-30",
			HealthInsuranceName: "Bradesco Saúde",
			Address:             "Rua Oscar Freire, 200 - São Paulo, SP", CreatedAt: "2024-03-20",
		},
		{
			ID: "5", Name: "Roberto Almeida", CPF: "567.890.123-44",
			Phone: "(11) 95555-7890", Email: "roberto@email.com", BirthDate: "1982-06-12",
			HealthInsuranceName: "Particular",
			Address:             "Alameda Santos, 800 - São Paulo, SP", CreatedAt: "2024-04-05",
		},
		{
			ID: "6", Name: "Fernanda Lima", CPF: "678.901.234-55",
			Phone: "(11) 94444-1234", Email: "fernanda@email.com", BirthDate: "1988-09-25",
			HealthInsuranceID: "SULAMERICA-11111", HealthInsuranceName: "SulAmérica",
			Address: "Rua Haddock Lobo, 350 - São Paulo, SP", CreatedAt: "2024-04-18",
		},
	}
}

// ProcedureTemplates returns the seeded procedure catalog
func ProcedureTemplates() []entities.ProcedureTemplate {
	return []entities.ProcedureTemplate{
		{ID: "1", Name: "Implante Dentário Unitário", BaseCost: 3500, EstimatedDuration: "3-6 meses", Description: "Procedimento cirúrgico para substituição de dente perdido", Category: "Implantodontia"},
		{ID: "2", Name: "Tratamento de Canal", BaseCost: 800, EstimatedDuration: "1-3 sessões", Description: "Remoção da polpa dentária infectada", Category: "Endodontia"},
		{ID: "3", Name: "Aparelho Ortodôntico Fixo", BaseCost: 4000, EstimatedDuration: "18-36 meses", Description: "Correção do alinhamento dentário", Category: "Ortodontia"},
		{ID: "4", Name: "Extração de Siso", BaseCost: 450, EstimatedDuration: "1 sessão", Description: "Remoção cirúrgica do terceiro molar", Category: "Cirurgia"},
		{ID: "5", Name: "Clareamento Dental", BaseCost: 1200, EstimatedDuration: "2-4 sessões", Description: "Procedimento estético para branqueamento", Category: "Estética"},
		{ID: "6", Name: "Profilaxia Completa", BaseCost: 180, EstimatedDuration: "1 sessão", Description: "Limpeza profissional e aplicação de flúor", Category: "Preventivo"},
		{ID: "7", Name: "Restauração em Resina", BaseCost: 250, EstimatedDuration: "1 sessão", Description: "Restauração estética de cavidades", Category: "Dentística"},
		{ID: "8", Name: "Prótese Total", BaseCost: 2800, EstimatedDuration: "4-6 semanas", Description: "Prótese removível completa", Category: "Prótese"},
	}
}

// ProcedureTemplateStages returns the seeded stage plans for the catalog
func ProcedureTemplateStages() []entities.ProcedureTemplateStage {
	return []entities.ProcedureTemplateStage{
		// Implante Dentário Unitário
		{ID: "1", TemplateID: "1", Name: "Consulta Inicial e Avaliação", OrderIndex: 1, Description: "Avaliação clínica e radiográfica", ChecklistItems: []string{"Anamnese completa", "Exame clínico", "Solicitação de exames"}},
		{ID: "2", TemplateID: "1", Name: "Exames de Imagem", OrderIndex: 2, Description: "Tomografia e radiografias", ChecklistItems: []string{"Tomografia computadorizada", "Radiografia panorâmica", "Análise óssea"}},
		{ID: "3", TemplateID: "1", Name: "Planejamento Cirúrgico", OrderIndex: 3, Description: "Definição do plano de tratamento", ChecklistItems: []string{"Guia cirúrgico", "Escolha do implante", "Orçamento aprovado"}},
		{ID: "4", TemplateID: "1", Name: "Cirurgia de Implante", OrderIndex: 4, Description: "Instalação do implante", ChecklistItems: []string{"Checklist pré-operatório", "Anestesia", "Instalação", "Sutura"}},
		{ID: "5", TemplateID: "1", Name: "Período de Osseointegração", OrderIndex: 5, Description: "Aguardar cicatrização (3-6 meses)", ChecklistItems: []string{"Acompanhamento mensal", "Raio-X de controle"}},
		{ID: "6", TemplateID: "1", Name: "Reabertura e Moldagem", OrderIndex: 6, Description: "Segunda fase cirúrgica", ChecklistItems: []string{"Reabertura", "Instalação do cicatrizador", "Moldagem"}},
		{ID: "7", TemplateID: "1", Name: "Instalação da Prótese", OrderIndex: 7, Description: "Colocação da coroa definitiva", ChecklistItems: []string{"Prova da prótese", "Ajuste oclusal", "Cimentação/parafusamento"}},
		{ID: "8", TemplateID: "1", Name: "Alta e Manutenção", OrderIndex: 8, Description: "Orientações finais", ChecklistItems: []string{"Orientações de higiene", "Agendamento de retorno"}},

		// Tratamento de Canal
		{ID: "9", TemplateID: "2", Name: "Diagnóstico e Anestesia", OrderIndex: 1, Description: "Confirmação diagnóstica", ChecklistItems: []string{"Teste de vitalidade", "Raio-X periapical", "Anestesia"}},
		{ID: "10", TemplateID: "2", Name: "Abertura e Instrumentação", OrderIndex: 2, Description: "Acesso e preparo dos canais", ChecklistItems: []string{"Isolamento absoluto", "Abertura coronária", "Odontometria", "Instrumentação"}},
		{ID: "11", TemplateID: "2", Name: "Obturação", OrderIndex: 3, Description: "Selamento dos canais", ChecklistItems: []string{"Secagem", "Obturação", "Raio-X final", "Restauração provisória"}},
		{ID: "12", TemplateID: "2", Name: "Restauração Definitiva", OrderIndex: 4, Description: "Restauração do dente", ChecklistItems: []string{"Remoção provisório", "Restauração definitiva", "Ajuste oclusal"}},

		// Aparelho Ortodôntico Fixo
		{ID: "13", TemplateID: "3", Name: "Documentação Ortodôntica", OrderIndex: 1, Description: "Exames iniciais", ChecklistItems: []string{"Fotos intra/extra orais", "Radiografias", "Modelos de estudo", "Cefalometria"}},
		{ID: "14", TemplateID: "3", Name: "Planejamento", OrderIndex: 2, Description: "Elaboração do plano", ChecklistItems: []string{"Análise cefalométrica", "Plano de tratamento", "Apresentação ao paciente"}},
		{ID: "15", TemplateID: "3", Name: "Instalação do Aparelho", OrderIndex: 3, Description: "Colagem dos brackets", ChecklistItems: []string{"Profilaxia", "Colagem", "Inserção do arco inicial"}},
		{ID: "16", TemplateID: "3", Name: "Manutenções Mensais", OrderIndex: 4, Description: "Ativações periódicas", ChecklistItems: []string{"Avaliação", "Troca de ligaduras", "Progressão de arcos"}},
		{ID: "17", TemplateID: "3", Name: "Remoção e Contenção", OrderIndex: 5, Description: "Finalização", ChecklistItems: []string{"Remoção do aparelho", "Instalação da contenção", "Documentação final"}},
	}
}

// StageTemplates returns the seeded reusable stage blueprints
func StageTemplates() []entities.StageTemplate {
	return []entities.StageTemplate{
		{ID: "st1", Name: "Anestesia", Description: "Aplicação de anestesia local", DefaultDuration: "15 min", ChecklistItems: []string{"Verificar alergias", "Preparar material", "Aplicar anestésico"}},
		{ID: "st2", Name: "Consulta Inicial", Description: "Primeira avaliação do paciente", DefaultDuration: "30 min", ChecklistItems: []string{"Anamnese", "Exame clínico", "Radiografias iniciais"}},
		{ID: "st3", Name: "Cirurgia", Description: "Procedimento cirúrgico", DefaultDuration: "1-2h", ChecklistItems: []string{"Checklist pré-operatório", "Equipamentos", "Pós-operatório"}},
		{ID: "st4", Name: "Retorno", Description: "Consulta de acompanhamento", DefaultDuration: "20 min", ChecklistItems: []string{"Avaliação cicatrização", "Orientações"}},
		{ID: "st5", Name: "Moldagem", Description: "Tomada de moldes", DefaultDuration: "30 min", ChecklistItems: []string{"Preparar material", "Moldagem", "Enviar laboratório"}},
		{ID: "st6", Name: "Raio-X", Description: "Exames radiográficos", DefaultDuration: "15 min", ChecklistItems: []string{"Posicionamento", "Tomada radiográfica", "Análise"}},
	}
}

// Treatments returns the seeded treatments in progress
func Treatments() []entities.Treatment {
	return []entities.Treatment{
		{ID: "1", PatientID: "1", TemplateID: "1", StartDate: "2024-09-15", Status: entities.TreatmentStatusInProgress, CurrentStageID: "s5", DentistID: "1", TotalCost: 3800, Notes: "Paciente com boa saúde sistêmica"},
		{ID: "2", PatientID: "2", TemplateID: "2", StartDate: "2024-11-20", Status: entities.TreatmentStatusInProgress, CurrentStageID: "s10", DentistID: "3", TotalCost: 850},
		{ID: "3", PatientID: "3", TemplateID: "3", StartDate: "2024-06-01", Status: entities.TreatmentStatusInProgress, CurrentStageID: "s16", DentistID: "2", TotalCost: 4500},
		{ID: "4", PatientID: "4", TemplateID: "4", StartDate: "2024-12-01", Status: entities.TreatmentStatusScheduled, CurrentStageID: "s1", DentistID: "1", TotalCost: 500},
		{ID: "5", PatientID: "5", TemplateID: "5", StartDate: "2024-11-01", Status: entities.TreatmentStatusCompleted, CurrentStageID: "s4", DentistID: "2", TotalCost: 1200},
		{ID: "6", PatientID: "6", TemplateID: "6", StartDate: "2024-12-05", Status: entities.TreatmentStatusScheduled, CurrentStageID: "s1", DentistID: "3", TotalCost: 180},
	}
}

// TreatmentStages returns the seeded per-treatment stage instances
func TreatmentStages() []entities.TreatmentStage {
	return []entities.TreatmentStage{
		// Treatment 1, implante (João Pedro)
		{ID: "s1", TreatmentID: "1", Name: "Consulta Inicial e Avaliação", Status: entities.StageStatusCompleted, OrderIndex: 1, ScheduledDate: "2024-09-15", DateCompleted: "2024-09-15"},
		{ID: "s2", TreatmentID: "1", Name: "Exames de Imagem", Status: entities.StageStatusCompleted, OrderIndex: 2, ScheduledDate: "2024-09-22", DateCompleted: "2024-09-22", Attachments: []string{"tomografia_joao.pdf"}},
		{ID: "s3", TreatmentID: "1", Name: "Planejamento Cirúrgico", Status: entities.StageStatusCompleted, OrderIndex: 3, ScheduledDate: "2024-09-30", DateCompleted: "2024-10-02"},
		{ID: "s4", TreatmentID: "1", Name: "Cirurgia de Implante", Status: entities.StageStatusCompleted, OrderIndex: 4, ScheduledDate: "2024-10-15", DateCompleted: "2024-10-15", Notes: "Implante Nobel 4.3x11.5mm instalado com sucesso"},
		{ID: "s5", TreatmentID: "1", Name: "Período de Osseointegração", Status: entities.StageStatusInProgress, OrderIndex: 5, ScheduledDate: "2024-10-16", Notes: "Acompanhamento em andamento"},
		{ID: "s6", TreatmentID: "1", Name: "Reabertura e Moldagem", Status: entities.StageStatusPending, OrderIndex: 6, ScheduledDate: "2025-01-15"},
		{ID: "s7", TreatmentID: "1", Name: "Instalação da Prótese", Status: entities.StageStatusPending, OrderIndex: 7, ScheduledDate: "2025-02-01"},
		{ID: "s8", TreatmentID: "1", Name: "Alta e Manutenção", Status: entities.StageStatusPending, OrderIndex: 8, ScheduledDate: "2025-02-15"},

		// Treatment 2, canal (Maria)
		{ID: "s9", TreatmentID: "2", Name: "Diagnóstico e Anestesia", Status: entities.StageStatusCompleted, OrderIndex: 1, ScheduledDate: "2024-11-20", DateCompleted: "2024-11-20"},
		{ID: "s10", TreatmentID: "2", Name: "Abertura e Instrumentação", Status: entities.StageStatusInProgress, OrderIndex: 2, ScheduledDate: "2024-11-27"},
		{ID: "s11", TreatmentID: "2", Name: "Obturação", Status: entities.StageStatusPending, OrderIndex: 3, ScheduledDate: "2024-12-04"},
		{ID: "s12", TreatmentID: "2", Name: "Restauração Definitiva", Status: entities.StageStatusPending, OrderIndex: 4, ScheduledDate: "2024-12-11"},

		// Treatment 3, ortodontia (Carlos)
		{ID: "s13", TreatmentID: "3", Name: "Documentação Ortodôntica", Status: entities.StageStatusCompleted, OrderIndex: 1, ScheduledDate: "2024-06-01", DateCompleted: "2024-06-01"},
		{ID: "s14", TreatmentID: "3", Name: "Planejamento", Status: entities.StageStatusCompleted, OrderIndex: 2, ScheduledDate: "2024-06-15", DateCompleted: "2024-06-15"},
		{ID: "s15", TreatmentID: "3", Name: "Instalação do Aparelho", Status: entities.StageStatusCompleted, OrderIndex: 3, ScheduledDate: "2024-07-01", DateCompleted: "2024-07-01"},
		{ID: "s16", TreatmentID: "3", Name: "Manutenções Mensais", Status: entities.StageStatusInProgress, OrderIndex: 4, ScheduledDate: "2024-08-01", Notes: "Manutenção #5 realizada em Nov/2024"},
		{ID: "s17", TreatmentID: "3", Name: "Remoção e Contenção", Status: entities.StageStatusPending, OrderIndex: 5, ScheduledDate: "2026-01-01"},
	}
}

// FinancialRecords returns the seeded ledger. Seed entries are already
// settled, so each carries status paid with paymentDate equal to its date.
func FinancialRecords() []entities.FinancialRecord {
	records := []entities.FinancialRecord{
		{ID: "1", TreatmentID: "1", Type: entities.RecordTypeIncome, Amount: 1900, Date: "2024-09-15", Description: "Entrada - Implante", Category: "Implantodontia", ResponsibleType: entities.ResponsiblePatient, PatientID: "1", CreatedBy: "1"},
		{ID: "2", TreatmentID: "1", Type: entities.RecordTypeIncome, Amount: 1900, Date: "2024-10-15", Description: "Parcela 2 - Implante", Category: "Implantodontia", ResponsibleType: entities.ResponsiblePatient, PatientID: "1", CreatedBy: "1"},
		{ID: "3", TreatmentID: "1", Type: entities.RecordTypeExpense, Amount: 450, Date: "2024-10-10", Description: "Componente Nobel", Category: "Material", ResponsibleType: entities.ResponsibleClinic, CreatedBy: "1"},
		{ID: "4", TreatmentID: "2", Type: entities.RecordTypeIncome, Amount: 850, Date: "2024-11-20", Description: "Tratamento de Canal", Category: "Endodontia", ResponsibleType: entities.ResponsiblePatient, PatientID: "2", CreatedBy: "3"},
		{ID: "5", TreatmentID: "3", Type: entities.RecordTypeIncome, Amount: 1500, Date: "2024-06-01", Description: "Entrada - Ortodontia", Category: "Ortodontia", ResponsibleType: entities.ResponsiblePatient, PatientID: "3", CreatedBy: "2"},
		{ID: "6", TreatmentID: "3", Type: entities.RecordTypeIncome, Amount: 500, Date: "2024-07-01", Description: "Mensalidade Jul", Category: "Ortodontia", ResponsibleType: entities.ResponsiblePatient, PatientID: "3", CreatedBy: "2"},
		{ID: "7", TreatmentID: "3", Type: entities.RecordTypeIncome, Amount: 500, Date: "2024-08-01", Description: "Mensalidade Ago", Category: "Ortodontia", ResponsibleType: entities.ResponsiblePatient, PatientID: "3", CreatedBy: "2"},
		{ID: "8", TreatmentID: "3", Type: entities.RecordTypeIncome, Amount: 500, Date: "2024-09-01", Description: "Mensalidade Set", Category: "Ortodontia", ResponsibleType: entities.ResponsiblePatient, PatientID: "3", CreatedBy: "2"},
		{ID: "9", TreatmentID: "3", Type: entities.RecordTypeIncome, Amount: 500, Date: "2024-10-01", Description: "Mensalidade Out", Category: "Ortodontia", ResponsibleType: entities.ResponsiblePatient, PatientID: "3", CreatedBy: "2"},
		{ID: "10", TreatmentID: "3", Type: entities.RecordTypeIncome, Amount: 500, Date: "2024-11-01", Description: "Mensalidade Nov", Category: "Ortodontia", ResponsibleType: entities.ResponsiblePatient, PatientID: "3", CreatedBy: "2"},
		{ID: "11", TreatmentID: "5", Type: entities.RecordTypeIncome, Amount: 1200, Date: "2024-11-01", Description: "Clareamento", Category: "Estética", ResponsibleType: entities.ResponsiblePatient, PatientID: "5", CreatedBy: "1"},
		{ID: "12", TreatmentID: "6", Type: entities.RecordTypeIncome, Amount: 180, Date: "2024-12-05", Description: "Profilaxia", Category: "Preventivo", ResponsibleType: entities.ResponsiblePatient, PatientID: "6", CreatedBy: "1"},
		{ID: "13", TreatmentID: "1", Type: entities.RecordTypeExpense, Amount: 120, Date: "2024-09-15", Description: "Material cirúrgico", Category: "Material", ResponsibleType: entities.ResponsibleClinic, CreatedBy: "1"},
		{ID: "14", TreatmentID: "3", Type: entities.RecordTypeExpense, Amount: 280, Date: "2024-07-01", Description: "Brackets cerâmicos", Category: "Material", ResponsibleType: entities.ResponsibleClinic, CreatedBy: "2"},
	}
	for i := range records {
		records[i].Status = entities.PaymentStatusPaid
		records[i].PaymentDate = records[i].Date
	}
	return records
}
