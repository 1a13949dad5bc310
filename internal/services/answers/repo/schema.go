package repo

// PGSchema creates the answer table in postgres
// the clickhouse table is provisioned by the columnar pipeline that loads it
const PGSchema = `
create table if not exists answer (
	id               bigserial primary key,
	user_id          bigint not null,
	question_id      bigint not null,
	answer           text   not null,
	answer_date      timestamp null,
	kit_id           text   null,
	test_id          bigint null,
	questionnaire_id bigint null
);
create index if not exists answer_user_question_idx on answer (user_id, question_id, answer_date desc);
create index if not exists answer_question_idx on answer (question_id);
`
